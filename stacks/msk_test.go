package stacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cf "github.com/zalando-incubator/cfn-pipes/internal/aws/cloudformation"
)

func TestMSKStackServerless(t *testing.T) {
	config := MSKConfig{
		Mode:           MSKModeServerless,
		SubnetIDs:      []string{"subnet-a", "subnet-b"},
		SecurityGroups: []string{"sg-1"},
		Policy: &ClusterPolicyConfig{
			AccountIDs:        []string{"123456789012"},
			ServicePrincipals: []string{"firehose.amazonaws.com"},
		},
	}
	template, err := NewMSKStack("events", config, map[string]string{"team": "data"}).Template()
	require.NoError(t, err)
	require.NoError(t, template.Validate())

	assert.Equal(t, []string{MSKClusterID, MSKClusterIDParameterID, MSKClusterNameParameterID, MSKClusterPolicyID}, template.ResourceNames())

	cluster := template.Resources[MSKClusterID].Properties.(*cf.MSKServerlessCluster)
	assert.Equal(t, "events", cluster.ClusterName.Literal)
	assert.JSONEq(t, `{"Sasl": {"Iam": {"Enabled": true}}}`, mustJSON(t, cluster.ClientAuthentication))
	assert.JSONEq(t, `[{"SecurityGroups": ["sg-1"], "SubnetIds": ["subnet-a", "subnet-b"]}]`, mustJSON(t, cluster.VPCConfigs))
	assert.Equal(t, map[string]string{"team": "data"}, cluster.Tags)

	policy := template.Resources[MSKClusterPolicyID].Properties.(*cf.MSKClusterPolicy)
	assert.JSONEq(t, `{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["123456789012"]},
				"Action": ["kafka:*"],
				"Resource": [{"Fn::GetAtt": ["Cluster", "Arn"]}]
			},
			{
				"Effect": "Allow",
				"Principal": {"Service": ["firehose.amazonaws.com"]},
				"Action": ["kafka:*"],
				"Resource": [{"Fn::GetAtt": ["Cluster", "Arn"]}]
			}
		]
	}`, mustJSON(t, policy.Policy))

	idParameter := template.Resources[MSKClusterIDParameterID].Properties.(*cf.SSMParameter)
	assert.Equal(t, "/mskcluster/clusterId", idParameter.Name.Literal)
	assert.JSONEq(t, `{"Fn::GetAtt": ["Cluster", "Arn"]}`, mustJSON(t, idParameter.Value))
	nameParameter := template.Resources[MSKClusterNameParameterID].Properties.(*cf.SSMParameter)
	assert.Equal(t, "/mskcluster/clusterName", nameParameter.Name.Literal)
	assert.Equal(t, "events", nameParameter.Value.Literal)

	require.Contains(t, template.Outputs, OutputClusterArn)
}

func TestMSKStackProvisioned(t *testing.T) {
	config := MSKConfig{
		Mode:            MSKModeProvisioned,
		ClusterName:     "orders-kafka",
		SubnetIDs:       []string{"subnet-a", "subnet-b", "subnet-c"},
		BrokerCount:     6,
		ParameterPrefix: "/kafka/orders/",
	}
	template, err := NewMSKStack("events", config, nil).Template()
	require.NoError(t, err)
	require.NoError(t, template.Validate())

	assert.Equal(t, []string{MSKClusterID, MSKClusterIDParameterID, MSKClusterNameParameterID}, template.ResourceNames())

	cluster := template.Resources[MSKClusterID].Properties.(*cf.MSKCluster)
	assert.Equal(t, "orders-kafka", cluster.ClusterName.Literal)
	assert.Equal(t, DefaultKafkaVersion, cluster.KafkaVersion.Literal)
	assert.Equal(t, int64(6), cluster.NumberOfBrokerNodes.Literal)
	assert.Equal(t, DefaultInstanceType, cluster.BrokerNodeGroupInfo.InstanceType.Literal)
	assert.Equal(t, int64(DefaultVolumeSizeGiB), cluster.BrokerNodeGroupInfo.StorageInfo.EBSStorageInfo.VolumeSize.Literal)
	assert.Nil(t, cluster.BrokerNodeGroupInfo.SecurityGroups)
	assert.JSONEq(t, `{"EncryptionInTransit": {"ClientBroker": "TLS", "InCluster": true}}`, mustJSON(t, cluster.EncryptionInfo))
	assert.Nil(t, cluster.Tags)

	idParameter := template.Resources[MSKClusterIDParameterID].Properties.(*cf.SSMParameter)
	assert.Equal(t, "/kafka/orders/clusterId", idParameter.Name.Literal)
}

func TestMSKStackErrors(t *testing.T) {
	_, err := NewMSKStack("events", MSKConfig{
		Mode:        MSKModeProvisioned,
		SubnetIDs:   []string{"a", "b"},
		BrokerCount: 3,
	}, nil).Template()
	assert.EqualError(t, err, "broker count 3 is not a multiple of the 2 client subnets")

	assert.NotPanics(t, func() {
		_, err = NewMSKStack("events", MSKConfig{Mode: MSKModeProvisioned}, nil).Template()
	})
	assert.EqualError(t, err, "MSK provisioned cluster events needs client subnets")

	_, err = NewMSKStack("events", MSKConfig{Mode: MSKModeServerless, BrokerCount: 2}, nil).Template()
	assert.EqualError(t, err, "MSK serverless cluster events needs client subnets")

	_, err = NewMSKStack("events", MSKConfig{Mode: "dedicated"}, nil).Template()
	assert.EqualError(t, err, `unknown MSK mode "dedicated"`)
}

func TestMSKStackEmptyPolicy(t *testing.T) {
	template, err := NewMSKStack("events", MSKConfig{
		Mode:      MSKModeServerless,
		SubnetIDs: []string{"a", "b"},
		Policy:    &ClusterPolicyConfig{},
	}, nil).Template()
	require.NoError(t, err)
	assert.NotContains(t, template.Resources, MSKClusterPolicyID)
}
