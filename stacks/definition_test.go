package stacks

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cf "github.com/zalando-incubator/cfn-pipes/internal/aws/cloudformation"
)

type brokenStack struct {
	template *cf.Template
	err      error
}

func (s brokenStack) Name() string { return "broken" }
func (s brokenStack) Kind() Kind { return KindPipe }
func (s brokenStack) Template() (*cf.Template, error) { return s.template, s.err }

func TestSynthesize(t *testing.T) {
	buf, err := Synthesize(NewMSKStack("events", MSKConfig{Mode: MSKModeServerless, SubnetIDs: []string{"a", "b"}}, nil))
	require.NoError(t, err)

	template := cf.NewTemplate()
	require.NoError(t, json.Unmarshal(buf, template))
	assert.Equal(t, "2010-09-09", template.AWSTemplateFormatVersion)
	assert.IsType(t, &cf.MSKServerlessCluster{}, template.Resources[MSKClusterID].Properties)

	yamlBuf, err := SynthesizeYAML(NewMSKStack("events", MSKConfig{Mode: MSKModeServerless, SubnetIDs: []string{"a", "b"}}, nil))
	require.NoError(t, err)
	jsonBuf, err := yaml.YAMLToJSON(yamlBuf)
	require.NoError(t, err)
	assert.JSONEq(t, string(buf), string(jsonBuf))
}

func TestSynthesizeErrors(t *testing.T) {
	_, err := Synthesize(brokenStack{err: errors.New("boom")})
	assert.EqualError(t, err, `failed to build template for stack "broken": boom`)

	template := cf.NewTemplate()
	template.AddResource("Pipe", &cf.PipesPipe{})
	_, err = Synthesize(brokenStack{template: template})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid template for stack "broken"`)
	assert.Contains(t, err.Error(), "property RoleArn is required")
}

func TestTemplateHash(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", TemplateHash(nil))
	assert.NotEqual(t, TemplateHash([]byte("a")), TemplateHash([]byte("b")))
	assert.Len(t, TemplateHash([]byte("{}")), 64)
}
