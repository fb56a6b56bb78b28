// Package cdk renders the stack definitions as an AWS CDK application.
//
// Pipe stacks are built from native constructs. The other kinds are
// synthesized to CloudFormation templates first and imported with
// CfnInclude, so both paths produce the same resources.
package cdk
