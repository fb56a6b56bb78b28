package aws

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	tagPrefix       = "cfn-pipes:"
	managedByTag    = tagPrefix + "managed-by"
	templateHashTag = tagPrefix + "template-hash"
	kindTag         = tagPrefix + "kind"
	definitionTag   = tagPrefix + "definition"
)

// Stack is a simple wrapper around a CloudFormation Stack.
type Stack struct {
	Name         string
	ID           string
	Status       string
	StatusReason string
	Outputs      map[string]string
	Tags         map[string]string
}

// DefinitionName returns the name of the stack definition the stack was
// deployed from.
func (s *Stack) DefinitionName() string {
	if name, ok := s.Tags[definitionTag]; ok {
		return name
	}
	return s.Name
}

// TemplateHash returns the hash of the template the stack was last
// deployed with.
func (s *Stack) TemplateHash() string {
	return s.Tags[templateHashTag]
}

// Kind returns the kind of the stack definition.
func (s *Stack) Kind() string {
	return s.Tags[kindTag]
}

// Output returns the value of the output key.
func (s *Stack) Output(key string) (string, error) {
	v, ok := s.Outputs[key]
	if !ok {
		return "", fmt.Errorf("%w %q of stack %q", ErrMissingOutput, key, s.Name)
	}
	return v, nil
}

// IsComplete returns true if the stack is stable and usable.
func (s *Stack) IsComplete() bool {
	if s == nil {
		return false
	}
	return isComplete(types.StackStatus(s.Status))
}

// IsInProgress returns true while CloudFormation operates on the stack.
func (s *Stack) IsInProgress() bool {
	if s == nil {
		return false
	}
	return strings.HasSuffix(s.Status, "_IN_PROGRESS")
}

// StackSpec describes the desired state of a stack.
type StackSpec struct {
	Name         string
	Kind         string
	TemplateBody string
	TemplateHash string
	Tags         map[string]string
}

func (a *Adapter) stackTags(spec *StackSpec) []types.Tag {
	tags := make(map[string]string, len(spec.Tags)+4)
	for k, v := range spec.Tags {
		tags[k] = v
	}
	tags[managedByTag] = a.controllerID
	tags[templateHashTag] = spec.TemplateHash
	tags[kindTag] = spec.Kind
	tags[definitionTag] = spec.Name

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		result = append(result, cfTag(k, tags[k]))
	}
	return result
}

// CreateStack creates the stack described by spec and returns its ID.
func (a *Adapter) CreateStack(ctx context.Context, spec *StackSpec) (string, error) {
	name := a.StackName(spec.Name)
	params := &cloudformation.CreateStackInput{
		StackName:                   aws.String(name),
		TemplateBody:                aws.String(spec.TemplateBody),
		Capabilities:                []types.Capability{types.CapabilityCapabilityNamedIam},
		OnFailure:                   types.OnFailureDelete,
		Tags:                        a.stackTags(spec),
		TimeoutInMinutes:            aws.Int32(a.timeoutInMinutes()),
		EnableTerminationProtection: aws.Bool(a.stackTerminationProtection),
		ClientRequestToken:          aws.String(uuid.New().String()),
	}

	resp, err := a.cloudformation.CreateStack(ctx, params)
	if err != nil {
		return name, fmt.Errorf("failed to create stack %q: %w", name, err)
	}
	log.WithField("stack", name).Infof("creating stack %s", aws.ToString(resp.StackId))
	return aws.ToString(resp.StackId), nil
}

// UpdateStack updates the stack described by spec. ErrNoUpdates is
// returned when the template and tags are unchanged.
func (a *Adapter) UpdateStack(ctx context.Context, spec *StackSpec) (string, error) {
	name := a.StackName(spec.Name)
	params := &cloudformation.UpdateStackInput{
		StackName:          aws.String(name),
		TemplateBody:       aws.String(spec.TemplateBody),
		Capabilities:       []types.Capability{types.CapabilityCapabilityNamedIam},
		Tags:               a.stackTags(spec),
		ClientRequestToken: aws.String(uuid.New().String()),
	}

	if a.stackTerminationProtection {
		if _, err := a.cloudformation.UpdateTerminationProtection(ctx, &cloudformation.UpdateTerminationProtectionInput{
			StackName:                   aws.String(name),
			EnableTerminationProtection: aws.Bool(true),
		}); err != nil {
			return name, fmt.Errorf("failed to enable termination protection of stack %q: %w", name, err)
		}
	}

	resp, err := a.cloudformation.UpdateStack(ctx, params)
	if err != nil {
		if isNoUpdatesError(err) {
			return name, ErrNoUpdates
		}
		return name, fmt.Errorf("failed to update stack %q: %w", name, err)
	}
	log.WithField("stack", name).Infof("updating stack %s", aws.ToString(resp.StackId))
	return aws.ToString(resp.StackId), nil
}

// DeleteStack deletes the stack with the given physical name. Termination
// protection is disabled first.
func (a *Adapter) DeleteStack(ctx context.Context, stackName string) error {
	_, err := a.cloudformation.UpdateTerminationProtection(ctx, &cloudformation.UpdateTerminationProtectionInput{
		StackName:                   aws.String(stackName),
		EnableTerminationProtection: aws.Bool(false),
	})
	if err != nil {
		if isNotFoundError(err) {
			return ErrStackNotFound
		}
		return fmt.Errorf("failed to disable termination protection of stack %q: %w", stackName, err)
	}

	if _, err := a.cloudformation.DeleteStack(ctx, &cloudformation.DeleteStackInput{StackName: aws.String(stackName)}); err != nil {
		return fmt.Errorf("failed to delete stack %q: %w", stackName, err)
	}
	log.WithField("stack", stackName).Info("deleting stack")
	return nil
}

// GetStack returns the stack with the given physical name or ID in any
// state.
func (a *Adapter) GetStack(ctx context.Context, stackName string) (*Stack, error) {
	resp, err := a.cloudformation.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{StackName: aws.String(stackName)})
	if err != nil {
		if isNotFoundError(err) {
			return nil, ErrStackNotFound
		}
		return nil, fmt.Errorf("failed to describe stack %q: %w", stackName, err)
	}
	if len(resp.Stacks) < 1 {
		return nil, ErrStackNotFound
	}
	return mapToManagedStack(&resp.Stacks[0]), nil
}

// GetReadyStack is GetStack failing with ErrStackNotReady unless the stack
// is complete.
func (a *Adapter) GetReadyStack(ctx context.Context, stackName string) (*Stack, error) {
	stack, err := a.GetStack(ctx, stackName)
	if err != nil {
		return nil, err
	}
	if !stack.IsComplete() {
		return nil, fmt.Errorf("%w: stack %q is %s", ErrStackNotReady, stack.Name, stack.Status)
	}
	return stack, nil
}

// FindManagedStacks returns all complete stacks tagged with the controller ID
// of the adapter.
func (a *Adapter) FindManagedStacks(ctx context.Context) ([]*Stack, error) {
	stacks := make([]*Stack, 0)
	paginator := cloudformation.NewDescribeStacksPaginator(a.cloudformation, &cloudformation.DescribeStacksInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list stacks: %w", err)
		}
		for i := range page.Stacks {
			s := &page.Stacks[i]
			if !isComplete(s.StackStatus) {
				continue
			}
			if isManagedStack(s.Tags, a.controllerID) {
				stacks = append(stacks, mapToManagedStack(s))
			}
		}
	}
	return stacks, nil
}

// StackOperation selects the waiter used by WaitForStack.
type StackOperation int

const (
	OperationCreate StackOperation = iota
	OperationUpdate
	OperationDelete
)

func (o StackOperation) String() string {
	switch o {
	case OperationCreate:
		return "create"
	case OperationUpdate:
		return "update"
	case OperationDelete:
		return "delete"
	}
	return "unknown"
}

// WaitForStack blocks until the operation on the stack finished, failed or
// the creation timeout of the adapter passed.
func (a *Adapter) WaitForStack(ctx context.Context, stackName string, op StackOperation) error {
	params := &cloudformation.DescribeStacksInput{StackName: aws.String(stackName)}
	var err error
	switch op {
	case OperationCreate:
		err = cloudformation.NewStackCreateCompleteWaiter(a.cloudformation, func(o *cloudformation.StackCreateCompleteWaiterOptions) {
			o.MinDelay = a.pollInterval
		}).Wait(ctx, params, a.creationTimeout)
	case OperationUpdate:
		err = cloudformation.NewStackUpdateCompleteWaiter(a.cloudformation, func(o *cloudformation.StackUpdateCompleteWaiterOptions) {
			o.MinDelay = a.pollInterval
		}).Wait(ctx, params, a.creationTimeout)
	case OperationDelete:
		err = cloudformation.NewStackDeleteCompleteWaiter(a.cloudformation, func(o *cloudformation.StackDeleteCompleteWaiterOptions) {
			o.MinDelay = a.pollInterval
		}).Wait(ctx, params, a.creationTimeout)
		if err != nil && isNotFoundError(err) {
			return nil
		}
	default:
		return fmt.Errorf("unknown stack operation %d", op)
	}
	if err != nil {
		return fmt.Errorf("failed waiting for %s of stack %q: %w", op, stackName, err)
	}
	return nil
}

func (a *Adapter) timeoutInMinutes() int32 {
	return int32(math.Ceil(a.creationTimeout.Minutes()))
}

func cfTag(key, value string) types.Tag {
	return types.Tag{
		Key:   aws.String(key),
		Value: aws.String(value),
	}
}

func mapToManagedStack(stack *types.Stack) *Stack {
	outputs := make(map[string]string, len(stack.Outputs))
	for _, o := range stack.Outputs {
		outputs[aws.ToString(o.OutputKey)] = aws.ToString(o.OutputValue)
	}
	return &Stack{
		Name:         aws.ToString(stack.StackName),
		ID:           aws.ToString(stack.StackId),
		Status:       string(stack.StackStatus),
		StatusReason: aws.ToString(stack.StackStatusReason),
		Outputs:      outputs,
		Tags:         convertCloudFormationTags(stack.Tags),
	}
}

// isComplete returns false on all other status, so stacks that are being
// changed or rolled back are left alone.
func isComplete(stackStatus types.StackStatus) bool {
	switch stackStatus {
	case types.StackStatusCreateComplete,
		types.StackStatusUpdateComplete,
		types.StackStatusUpdateRollbackComplete:
		return true
	}
	return false
}

func isManagedStack(cfTags []types.Tag, controllerID string) bool {
	tags := convertCloudFormationTags(cfTags)
	return tags[managedByTag] == controllerID
}

func convertCloudFormationTags(tags []types.Tag) map[string]string {
	ret := make(map[string]string, len(tags))
	for _, tag := range tags {
		ret[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	return ret
}

func isAlreadyExistsError(err error) bool {
	var alreadyExists *types.AlreadyExistsException
	return errors.As(err, &alreadyExists)
}

// isNoUpdatesError detects the validation error CloudFormation returns for
// an update without changes.
func isNoUpdatesError(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationError" && strings.Contains(apiErr.ErrorMessage(), "No updates are to be performed")
	}
	return false
}

func isNotFoundError(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationError" && strings.Contains(apiErr.ErrorMessage(), "does not exist")
	}
	return false
}

// IsAlreadyExistsError reports whether err was caused by creating a stack
// that exists.
func IsAlreadyExistsError(err error) bool {
	return isAlreadyExistsError(err)
}
