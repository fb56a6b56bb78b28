// Package aws provides the Amazon Web Services abstractions used to deploy stacks.
// The exported Adapter manages CloudFormation stack lifecycles and talks to SQS and EventBridge Pipes
// to verify that deployed pipes deliver messages.
package aws
