// Package cloudformation provides typed property bags for the
// CloudFormation resource types used by cfn-pipes, together with the
// intrinsic functions and the template model that serializes them.
//
// The resource and property types in schema.go are generated from the
// trimmed resource specification under spec/.
package cloudformation

//go:generate go run ../../../cmd/cfn-codegen --spec spec/CloudFormationResourceSpecification.json --service SQS --service Events --service IAM --service Logs --service SSM --service Pipes --service MediaPackage --service MSK --output schema.go
