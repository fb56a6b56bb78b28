package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sort"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zalando-incubator/cfn-pipes/aws"
	"github.com/zalando-incubator/cfn-pipes/problem"
)

type managedItem struct {
	desired *desiredStack
	stack   *aws.Stack
}

type stackStatus int

const (
	ready stackStatus = iota
	missing
	outdated
	orphan
)

func (s stackStatus) String() string {
	switch s {
	case ready:
		return "ready"
	case missing:
		return "missing"
	case outdated:
		return "outdated"
	case orphan:
		return "orphan"
	}
	return "unknown"
}

func (item *managedItem) Status() stackStatus {
	if item.desired == nil {
		return orphan
	}
	if item.stack == nil {
		return missing
	}
	if item.stack.TemplateHash() != item.desired.spec.TemplateHash {
		return outdated
	}
	return ready
}

type worker struct {
	adapter       *aws.Adapter
	desired       []*desiredStack
	metrics       *metrics
	deleteOrphans bool
	wait          bool
}

func waitForTerminationSignals(signals ...os.Signal) chan os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)
	return c
}

// startPolling runs a reconciliation every interval until the context is
// done or a termination signal arrives.
func (w *worker) startPolling(ctx context.Context, interval time.Duration) {
	signals := waitForTerminationSignals(syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(signals)

	for {
		if err := w.doWork(ctx); err != nil {
			log.Error(err)
		}

		log.Debugf("Start polling sleep %s", interval)
		select {
		case sig := <-signals:
			log.Infof("received %s, terminating", sig)
			return
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

func (w *worker) doWork(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("reconciliation panicked: %v", r)
			debug.PrintStack()
			err = fmt.Errorf("panic caused by: %v", r)
		}
	}()

	stacks, err := w.adapter.FindManagedStacks(ctx)
	if err != nil {
		return fmt.Errorf("doWork failed to list managed stacks: %w", err)
	}
	log.Debugf("Found %d stacks", len(stacks))
	w.metrics.stacksTotal.Set(float64(len(stacks)))
	w.metrics.desiredStacksTotal.Set(float64(len(w.desired)))

	model := buildManagedModel(w.adapter, w.desired, stacks)
	log.Debugf("Have %d models", len(model))

	problems := &problem.List{}
	for _, name := range sortedNames(model) {
		item := model[name]
		switch item.Status() {
		case orphan:
			if w.deleteOrphans {
				if err := w.deleteStack(ctx, name, item); err != nil {
					problems.Add("failed to delete orphaned stack %q: %w", name, err)
				}
			} else {
				log.WithField("stack", name).Info("stack is no longer configured, use --delete-orphans to delete it")
			}
		case missing:
			if err := w.createStack(ctx, name, item); err != nil {
				problems.Add("failed to create stack %q: %w", name, err)
			}
		case outdated:
			if err := w.updateStack(ctx, name, item); err != nil {
				problems.Add("failed to update stack %q: %w", name, err)
			}
		case ready:
			log.WithField("stack", name).Debug("stack is up to date")
		}
	}

	w.metrics.problemsTotal.Set(float64(problems.Len()))
	if err := problems.Err(); err != nil {
		return err
	}
	w.metrics.lastSyncTimestamp.SetToCurrentTime()
	return nil
}

// buildManagedModel pairs desired stacks with the deployed ones by physical
// stack name.
func buildManagedModel(adapter *aws.Adapter, desired []*desiredStack, stacks []*aws.Stack) map[string]*managedItem {
	model := make(map[string]*managedItem)
	for _, stack := range stacks {
		model[stack.Name] = &managedItem{stack: stack}
	}
	for _, d := range desired {
		name := adapter.StackName(d.def.Name())
		if item, ok := model[name]; ok {
			item.desired = d
		} else {
			model[name] = &managedItem{desired: d}
		}
	}
	return model
}

func sortedNames(model map[string]*managedItem) []string {
	names := make([]string, 0, len(model))
	for name := range model {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (w *worker) createStack(ctx context.Context, name string, item *managedItem) error {
	logger := log.WithFields(log.Fields{"stack": name, "kind": item.desired.spec.Kind})
	logger.Info("creating stack")

	stackID, err := w.adapter.CreateStack(ctx, item.desired.spec)
	if err != nil {
		if aws.IsAlreadyExistsError(err) {
			// not complete yet, so it was not listed as managed
			stack, getErr := w.adapter.GetStack(ctx, name)
			if getErr == nil {
				item.stack = stack
				logger.Infof("stack exists in state %s", stack.Status)
				return nil
			}
			return fmt.Errorf("%w (lookup: %v)", err, getErr)
		}
		return err
	}
	w.metrics.changesTotal.created(item.desired.spec.Kind)

	if w.wait {
		if err := w.adapter.WaitForStack(ctx, stackID, aws.OperationCreate); err != nil {
			return err
		}
	}
	logger.Infof("stack %q created", stackID)
	return nil
}

func (w *worker) updateStack(ctx context.Context, name string, item *managedItem) error {
	logger := log.WithFields(log.Fields{"stack": name, "kind": item.desired.spec.Kind})
	logger.Infof("updating stack, template hash %s -> %s", item.stack.TemplateHash(), item.desired.spec.TemplateHash)

	stackID, err := w.adapter.UpdateStack(ctx, item.desired.spec)
	if err != nil {
		if errors.Is(err, aws.ErrNoUpdates) {
			logger.Info("stack has no changes")
			return nil
		}
		return err
	}
	w.metrics.changesTotal.updated(item.desired.spec.Kind)

	if w.wait {
		if err := w.adapter.WaitForStack(ctx, stackID, aws.OperationUpdate); err != nil {
			return err
		}
	}
	logger.Infof("stack %q updated", stackID)
	return nil
}

func (w *worker) deleteStack(ctx context.Context, name string, item *managedItem) error {
	logger := log.WithFields(log.Fields{"stack": name, "kind": item.stack.Kind()})
	if err := w.adapter.DeleteStack(ctx, name); err != nil {
		if errors.Is(err, aws.ErrStackNotFound) {
			return nil
		}
		return err
	}
	w.metrics.changesTotal.deleted(item.stack.Kind())

	if w.wait {
		if err := w.adapter.WaitForStack(ctx, name, aws.OperationDelete); err != nil {
			return err
		}
	}
	logger.Info("deleted orphaned stack")
	return nil
}
