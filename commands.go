package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"github.com/zalando-incubator/cfn-pipes/aws"
	"github.com/zalando-incubator/cfn-pipes/problem"
	"github.com/zalando-incubator/cfn-pipes/stacks"
)

// selectDefinitions returns the definitions with the given names, all of
// them when names is empty.
func selectDefinitions(defs []stacks.Definition, names []string) ([]stacks.Definition, error) {
	if len(names) == 0 {
		return defs, nil
	}
	result := make([]stacks.Definition, 0, len(names))
	for _, name := range names {
		def, ok := stacks.Lookup(defs, name)
		if !ok {
			return nil, fmt.Errorf("unknown stack %q", name)
		}
		result = append(result, def)
	}
	return result, nil
}

// synth writes the template of every definition to dir, or to out when
// dir is empty.
func synth(out io.Writer, defs []stacks.Definition, dir, format string) error {
	for _, def := range defs {
		var (
			body []byte
			err  error
		)
		switch format {
		case "yaml":
			body, err = stacks.SynthesizeYAML(def)
		default:
			body, err = stacks.Synthesize(def)
		}
		if err != nil {
			return err
		}

		if dir == "" {
			if _, err := fmt.Fprintf(out, "# %s\n%s\n", def.Name(), body); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(dir, def.Name()+".template."+format)
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return fmt.Errorf("failed to write template of stack %q: %w", def.Name(), err)
		}
		log.WithFields(log.Fields{"stack": def.Name(), "kind": def.Kind()}).Infof("wrote %s", path)
	}
	return nil
}

// validate builds and validates every template.
func validate(out io.Writer, defs []stacks.Definition) error {
	problems := &problem.List{}
	for _, def := range defs {
		body, err := stacks.Synthesize(def)
		if err != nil {
			problems.Add("%w", err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\tOK\t%s\n", def.Name(), def.Kind(), stacks.TemplateHash(body)[:12])
	}
	return problems.Err()
}

// deploy creates or updates the stacks of the definitions.
func deploy(ctx context.Context, w *worker) error {
	problems := &problem.List{}
	for _, d := range w.desired {
		name := w.adapter.StackName(d.def.Name())
		item := &managedItem{desired: d}

		stack, err := w.adapter.GetStack(ctx, name)
		switch {
		case errors.Is(err, aws.ErrStackNotFound):
		case err != nil:
			problems.Add("failed to get stack %q: %w", name, err)
			continue
		case stack.IsInProgress():
			problems.Add("%w: stack %q is %s", aws.ErrStackNotReady, name, stack.Status)
			continue
		default:
			item.stack = stack
		}

		var opErr error
		switch item.Status() {
		case missing:
			opErr = w.createStack(ctx, name, item)
		case outdated:
			opErr = w.updateStack(ctx, name, item)
		default:
			log.WithField("stack", name).Info("stack is up to date")
		}
		if opErr != nil {
			problems.Add("failed to deploy stack %q: %w", name, opErr)
		}
	}
	return problems.Err()
}

// remove deletes the stacks of the definitions.
func remove(ctx context.Context, adapter *aws.Adapter, defs []stacks.Definition, wait bool) error {
	problems := &problem.List{}
	for _, def := range defs {
		name := adapter.StackName(def.Name())
		if err := adapter.DeleteStack(ctx, name); err != nil {
			if errors.Is(err, aws.ErrStackNotFound) {
				log.WithField("stack", name).Info("stack does not exist")
				continue
			}
			problems.Add("%w", err)
			continue
		}
		if wait {
			if err := adapter.WaitForStack(ctx, name, aws.OperationDelete); err != nil {
				problems.Add("%w", err)
				continue
			}
		}
		log.WithField("stack", name).Info("stack deleted")
	}
	return problems.Err()
}

// status prints the reconciliation status of the desired stacks.
func status(ctx context.Context, out io.Writer, adapter *aws.Adapter, desired []*desiredStack) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tSTACK\tCLOUDFORMATION\tSTATUS")
	for _, d := range desired {
		name := adapter.StackName(d.def.Name())
		item := &managedItem{desired: d}
		cfStatus := "-"

		stack, err := adapter.GetStack(ctx, name)
		switch {
		case errors.Is(err, aws.ErrStackNotFound):
		case err != nil:
			return err
		default:
			item.stack = stack
			cfStatus = stack.Status
		}

		state := item.Status().String()
		if stack != nil && stack.IsInProgress() {
			state = "in-progress"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.def.Name(), d.def.Kind(), name, cfStatus, state)
	}
	return tw.Flush()
}

// list prints the stacks managed by the controller ID of the adapter.
func list(ctx context.Context, out io.Writer, adapter *aws.Adapter) error {
	managed, err := adapter.FindManagedStacks(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STACK\tDEFINITION\tKIND\tCLOUDFORMATION\tTEMPLATE")
	for _, s := range managed {
		hash := s.TemplateHash()
		if len(hash) > 12 {
			hash = hash[:12]
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.DefinitionName(), s.Kind(), s.Status, hash)
	}
	return tw.Flush()
}

// smoke sends messages to the source queue of a deployed pipe stack after
// making sure the pipe runs. A stopped pipe is started first.
func smoke(ctx context.Context, out io.Writer, adapter *aws.Adapter, def stacks.Definition, message string, count int) error {
	if def.Kind() != stacks.KindPipe {
		return fmt.Errorf("stack %q is a %s stack, smoke tests need a pipe", def.Name(), def.Kind())
	}
	stack, err := adapter.GetReadyStack(ctx, adapter.StackName(def.Name()))
	if err != nil {
		return err
	}
	queueURL, err := stack.Output(stacks.OutputQueueURL)
	if err != nil {
		return err
	}
	pipeArn, err := stack.Output(stacks.OutputPipeArn)
	if err != nil {
		return err
	}

	state, err := adapter.GetPipeState(ctx, pipeArn)
	if err != nil {
		return err
	}
	if state.Current == stacks.PipeStateStopped {
		log.WithField("pipe", state.Name).Info("starting stopped pipe")
		if err := adapter.SetPipeState(ctx, pipeArn, stacks.PipeStateRunning); err != nil {
			return err
		}
	}

	state, err = adapter.WaitForPipeState(ctx, pipeArn, stacks.PipeStateRunning)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "pipe %s is %s\n", state.Name, state.Current)

	for i := 0; i < count; i++ {
		id, err := adapter.SendMessage(ctx, queueURL, message)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "sent message %s\n", id)
	}

	if targetURL, err := stack.Output(stacks.OutputTargetQueueURL); err == nil {
		visible, inFlight, err := adapter.QueueDepth(ctx, targetURL)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "consumer queue holds %d visible and %d in flight messages\n", visible, inFlight)
	}
	return nil
}
