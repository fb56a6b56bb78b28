package main

import (
	"github.com/zalando-incubator/cfn-pipes/aws"
	"github.com/zalando-incubator/cfn-pipes/stacks"
)

// desiredStack is a stack definition rendered to the template CloudFormation
// gets.
type desiredStack struct {
	def  stacks.Definition
	spec *aws.StackSpec
}

func render(def stacks.Definition, tags map[string]string) (*desiredStack, error) {
	body, err := stacks.Synthesize(def)
	if err != nil {
		return nil, err
	}
	return &desiredStack{
		def: def,
		spec: &aws.StackSpec{
			Name:         def.Name(),
			Kind:         string(def.Kind()),
			TemplateBody: string(body),
			TemplateHash: stacks.TemplateHash(body),
			Tags:         tags,
		},
	}, nil
}

func renderAll(defs []stacks.Definition, tags map[string]string) ([]*desiredStack, error) {
	result := make([]*desiredStack, 0, len(defs))
	for _, def := range defs {
		d, err := render(def, tags)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}
