package stacks

import (
	"fmt"
	"strings"

	cf "github.com/zalando-incubator/cfn-pipes/internal/aws/cloudformation"
)

const (
	MSKClusterID              = "Cluster"
	MSKClusterPolicyID        = "ClusterPolicy"
	MSKClusterIDParameterID   = "ClusterIDParameter"
	MSKClusterNameParameterID = "ClusterNameParameter"
	OutputClusterArn          = "ClusterArn"

	MSKModeServerless  = "serverless"
	MSKModeProvisioned = "provisioned"

	DefaultKafkaVersion    = "3.5.1"
	DefaultInstanceType    = "kafka.m5.large"
	DefaultVolumeSizeGiB   = 100
	DefaultParameterPrefix = "/mskcluster"
)

// MSKConfig configures a Kafka cluster using IAM authentication.
type MSKConfig struct {
	Mode            string               `json:"mode" validate:"required,oneof=serverless provisioned"`
	ClusterName     string               `json:"clusterName,omitempty" validate:"omitempty,max=64"`
	SubnetIDs       []string             `json:"subnetIDs" validate:"required,min=2"`
	SecurityGroups  []string             `json:"securityGroups,omitempty"`
	KafkaVersion    string               `json:"kafkaVersion,omitempty"`
	BrokerCount     int64                `json:"brokerCount,omitempty"`
	InstanceType    string               `json:"instanceType,omitempty"`
	VolumeSizeGiB   int64                `json:"volumeSizeGiB,omitempty" validate:"omitempty,min=1,max=16384"`
	Policy          *ClusterPolicyConfig `json:"policy,omitempty"`
	ParameterPrefix string               `json:"parameterPrefix,omitempty" validate:"omitempty,startswith=/"`
}

// ClusterPolicyConfig grants kafka:* on the cluster to other accounts and
// services, e.g. firehose.amazonaws.com.
type ClusterPolicyConfig struct {
	AccountIDs        []string `json:"accountIDs,omitempty"`
	ServicePrincipals []string `json:"servicePrincipals,omitempty"`
}

// MSKStack is the Definition of an MSK cluster.
type MSKStack struct {
	name   string
	config MSKConfig
	tags   map[string]string
}

// NewMSKStack returns the MSK stack name configured by config.
func NewMSKStack(name string, config MSKConfig, tags map[string]string) *MSKStack {
	return &MSKStack{name: name, config: config, tags: tags}
}

func (s *MSKStack) Name() string { return s.name }

func (s *MSKStack) Kind() Kind { return KindMSK }

// ClusterName is the name of the Kafka cluster.
func (s *MSKStack) ClusterName() string {
	if s.config.ClusterName != "" {
		return s.config.ClusterName
	}
	return s.name
}

func (s *MSKStack) Template() (*cf.Template, error) {
	t := cf.NewTemplate()
	t.Description = fmt.Sprintf("MSK %s cluster %s", s.config.Mode, s.ClusterName())

	if len(s.config.SubnetIDs) == 0 && (s.config.Mode == MSKModeServerless || s.config.Mode == MSKModeProvisioned) {
		return nil, fmt.Errorf("MSK %s cluster %s needs client subnets", s.config.Mode, s.ClusterName())
	}

	switch s.config.Mode {
	case MSKModeServerless:
		cluster := &cf.MSKServerlessCluster{
			ClusterName: cf.String(s.ClusterName()),
			ClientAuthentication: &cf.MSKServerlessClusterClientAuthentication{
				Sasl: &cf.MSKServerlessClusterSasl{
					Iam: &cf.MSKServerlessClusterIam{Enabled: cf.Bool(true)},
				},
			},
			VPCConfigs: &cf.MSKServerlessClusterVPCConfigList{{
				SubnetIDs:      stringList(s.config.SubnetIDs),
				SecurityGroups: stringList(s.config.SecurityGroups),
			}},
		}
		if len(s.tags) > 0 {
			cluster.Tags = s.tags
		}
		t.AddResource(MSKClusterID, cluster)
	case MSKModeProvisioned:
		brokers := defaultInt(s.config.BrokerCount, int64(len(s.config.SubnetIDs)))
		if brokers%int64(len(s.config.SubnetIDs)) != 0 {
			return nil, fmt.Errorf("broker count %d is not a multiple of the %d client subnets", brokers, len(s.config.SubnetIDs))
		}
		cluster := &cf.MSKCluster{
			ClusterName:         cf.String(s.ClusterName()),
			KafkaVersion:        cf.String(defaultString(s.config.KafkaVersion, DefaultKafkaVersion)),
			NumberOfBrokerNodes: cf.Integer(brokers),
			BrokerNodeGroupInfo: &cf.MSKClusterBrokerNodeGroupInfo{
				ClientSubnets:  stringList(s.config.SubnetIDs),
				SecurityGroups: stringList(s.config.SecurityGroups),
				InstanceType:   cf.String(defaultString(s.config.InstanceType, DefaultInstanceType)),
				StorageInfo: &cf.MSKClusterStorageInfo{
					EBSStorageInfo: &cf.MSKClusterEBSStorageInfo{
						VolumeSize: cf.Integer(defaultInt(s.config.VolumeSizeGiB, DefaultVolumeSizeGiB)),
					},
				},
			},
			ClientAuthentication: &cf.MSKClusterClientAuthentication{
				Sasl: &cf.MSKClusterSasl{
					Iam: &cf.MSKClusterIam{Enabled: cf.Bool(true)},
				},
			},
			EncryptionInfo: &cf.MSKClusterEncryptionInfo{
				EncryptionInTransit: &cf.MSKClusterEncryptionInTransit{
					ClientBroker: cf.String("TLS"),
					InCluster:    cf.Bool(true),
				},
			},
		}
		if len(s.tags) > 0 {
			cluster.Tags = s.tags
		}
		t.AddResource(MSKClusterID, cluster)
	default:
		return nil, fmt.Errorf("unknown MSK mode %q", s.config.Mode)
	}

	if p := s.config.Policy; p != nil && (len(p.AccountIDs) > 0 || len(p.ServicePrincipals) > 0) {
		t.AddResource(MSKClusterPolicyID, &cf.MSKClusterPolicy{
			ClusterArn: cf.GetAtt(MSKClusterID, "Arn"),
			Policy:     clusterPolicy(p),
		})
	}

	prefix := strings.TrimSuffix(defaultString(s.config.ParameterPrefix, DefaultParameterPrefix), "/")
	t.AddResource(MSKClusterIDParameterID, &cf.SSMParameter{
		Name:  cf.String(prefix + "/clusterId"),
		Type:  cf.String("String"),
		Value: cf.GetAtt(MSKClusterID, "Arn"),
	})
	t.AddResource(MSKClusterNameParameterID, &cf.SSMParameter{
		Name:  cf.String(prefix + "/clusterName"),
		Type:  cf.String("String"),
		Value: cf.String(s.ClusterName()),
	})

	t.AddOutput(OutputClusterArn, "ARN of the Kafka cluster", cf.GetAtt(MSKClusterID, "Arn"))
	return t, nil
}

func clusterPolicy(p *ClusterPolicyConfig) cf.IAMPolicyDocument {
	doc := cf.IAMPolicyDocument{Version: policyVersion}
	resource := cf.StringList(cf.GetAtt(MSKClusterID, "Arn"))
	if len(p.AccountIDs) > 0 {
		doc.Statement = append(doc.Statement, cf.IAMPolicyStatement{
			Effect:    "Allow",
			Principal: &cf.IAMPrincipal{AWS: stringList(p.AccountIDs)},
			Action:    cf.StringList(cf.String("kafka:*")),
			Resource:  resource,
		})
	}
	if len(p.ServicePrincipals) > 0 {
		doc.Statement = append(doc.Statement, cf.IAMPolicyStatement{
			Effect:    "Allow",
			Principal: &cf.IAMPrincipal{Service: stringList(p.ServicePrincipals)},
			Action:    cf.StringList(cf.String("kafka:*")),
			Resource:  resource,
		})
	}
	return doc
}
