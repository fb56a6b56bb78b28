package stacks

import (
	"fmt"
	"strings"

	cf "github.com/zalando-incubator/cfn-pipes/internal/aws/cloudformation"
)

const (
	MediaPackageChannelID = "Channel"
	OutputChannelArn      = "ChannelArn"

	DefaultSegmentDurationSeconds = 6
	DefaultWindowSeconds          = 60
)

// Packaging formats of an origin endpoint.
const (
	PackagingHLS  = "Hls"
	PackagingDASH = "Dash"
	PackagingCMAF = "Cmaf"
	PackagingMSS  = "Mss"
)

var adTriggers = []string{
	"BREAK",
	"DISTRIBUTOR_ADVERTISEMENT",
	"DISTRIBUTOR_OVERLAY_PLACEMENT_OPPORTUNITY",
	"DISTRIBUTOR_PLACEMENT_OPPORTUNITY",
	"PROVIDER_ADVERTISEMENT",
	"PROVIDER_OVERLAY_PLACEMENT_OPPORTUNITY",
	"PROVIDER_PLACEMENT_OPPORTUNITY",
	"SPLICE_INSERT",
}

// MediaPackageConfig configures a MediaPackage channel and its origin
// endpoints. Only the packaging sections present create endpoints.
type MediaPackageConfig struct {
	ChannelID     string                  `json:"channelID,omitempty" validate:"omitempty,max=256"`
	Description   string                  `json:"description,omitempty"`
	AdMarkers     string                  `json:"adMarkers,omitempty" validate:"omitempty,oneof=NONE SCTE35_ENHANCED PASSTHROUGH DATERANGE"`
	Authorization *CDNAuthorizationConfig `json:"authorization,omitempty"`
	HLS           *PackagingConfig        `json:"hls,omitempty"`
	DASH          *PackagingConfig        `json:"dash,omitempty"`
	CMAF          *PackagingConfig        `json:"cmaf,omitempty"`
	MSS           *PackagingConfig        `json:"mss,omitempty"`
}

// CDNAuthorizationConfig restricts endpoint access to a CDN presenting the
// secret stored in Secrets Manager.
type CDNAuthorizationConfig struct {
	SecretArn string `json:"secretArn" validate:"required"`
	RoleArn   string `json:"roleArn" validate:"required"`
}

// PackagingConfig holds the segment and window settings of one packaging
// format. WindowSeconds is the playlist window for HLS and CMAF and the
// manifest window for DASH and MSS.
type PackagingConfig struct {
	SegmentDurationSeconds         int64                  `json:"segmentDurationSeconds,omitempty" validate:"omitempty,min=1,max=30"`
	WindowSeconds                  int64                  `json:"windowSeconds,omitempty"`
	ProgramDateTimeIntervalSeconds int64                  `json:"programDateTimeIntervalSeconds,omitempty"`
	StreamSelection                *StreamSelectionConfig `json:"streamSelection,omitempty"`
}

// StreamSelectionConfig limits and orders the renditions of an endpoint.
type StreamSelectionConfig struct {
	MinVideoBitsPerSecond int64  `json:"minVideoBitsPerSecond,omitempty"`
	MaxVideoBitsPerSecond int64  `json:"maxVideoBitsPerSecond,omitempty"`
	StreamOrder           string `json:"streamOrder,omitempty" validate:"omitempty,oneof=ORIGINAL VIDEO_BITRATE_ASCENDING VIDEO_BITRATE_DESCENDING"`
}

// MediaPackageStack is the Definition of a MediaPackage channel.
type MediaPackageStack struct {
	name   string
	config MediaPackageConfig
	tags   map[string]string
}

// NewMediaPackageStack returns the MediaPackage stack name configured by
// config.
func NewMediaPackageStack(name string, config MediaPackageConfig, tags map[string]string) *MediaPackageStack {
	return &MediaPackageStack{name: name, config: config, tags: tags}
}

func (s *MediaPackageStack) Name() string { return s.name }

func (s *MediaPackageStack) Kind() Kind { return KindMediaPackage }

// ChannelID is the MediaPackage identifier of the channel.
func (s *MediaPackageStack) ChannelID() string {
	if s.config.ChannelID != "" {
		return s.config.ChannelID
	}
	return s.name + "_MediaPackageChannel"
}

// EndpointLogicalID is the logical ID of the origin endpoint for packaging.
func EndpointLogicalID(packaging string) string {
	return packaging + "Endpoint"
}

// EndpointOutput is the output carrying the URL of the endpoint for
// packaging.
func EndpointOutput(packaging string) string {
	return EndpointLogicalID(packaging) + "URL"
}

func (s *MediaPackageStack) Template() (*cf.Template, error) {
	if s.config.HLS == nil && s.config.DASH == nil && s.config.CMAF == nil && s.config.MSS == nil {
		return nil, fmt.Errorf("no packaging configured")
	}

	t := cf.NewTemplate()
	t.Description = fmt.Sprintf("MediaPackage channel %s", s.name)

	t.AddResource(MediaPackageChannelID, &cf.MediaPackageChannel{
		ID:          cf.String(s.ChannelID()),
		Description: cf.String(defaultString(s.config.Description, "Channel for "+s.name)),
		Tags:        cf.Tags(s.tags),
	})
	t.AddOutput(OutputChannelArn, "ARN of the channel", cf.GetAtt(MediaPackageChannelID, "Arn"))

	if c := s.config.HLS; c != nil {
		endpoint := s.endpoint(PackagingHLS)
		endpoint.HlsPackage = &cf.MediaPackageOriginEndpointHlsPackage{
			AdMarkers:                      optionalString(s.config.AdMarkers),
			AdTriggers:                     stringList(adTriggers),
			SegmentDurationSeconds:         cf.Integer(segmentDuration(c)),
			PlaylistWindowSeconds:          cf.Integer(window(c)),
			ProgramDateTimeIntervalSeconds: optionalInteger(c.ProgramDateTimeIntervalSeconds),
			UseAudioRenditionGroup:         cf.Bool(true),
			StreamSelection:                streamSelection(c.StreamSelection),
		}
		s.addEndpoint(t, PackagingHLS, endpoint)
	}
	if c := s.config.DASH; c != nil {
		endpoint := s.endpoint(PackagingDASH)
		endpoint.DashPackage = &cf.MediaPackageOriginEndpointDashPackage{
			AdTriggers:             stringList(adTriggers),
			PeriodTriggers:         stringList([]string{"ADS"}),
			SegmentDurationSeconds: cf.Integer(segmentDuration(c)),
			SegmentTemplateFormat:  cf.String("TIME_WITH_TIMELINE"),
			Profile:                cf.String("NONE"),
			MinBufferTimeSeconds:   cf.Integer(10),
			MinUpdatePeriodSeconds: cf.Integer(segmentDuration(c)),
			ManifestWindowSeconds:  cf.Integer(window(c)),
			StreamSelection:        streamSelection(c.StreamSelection),
		}
		s.addEndpoint(t, PackagingDASH, endpoint)
	}
	if c := s.config.CMAF; c != nil {
		endpoint := s.endpoint(PackagingCMAF)
		endpoint.CmafPackage = &cf.MediaPackageOriginEndpointCmafPackage{
			HlsManifests: &cf.MediaPackageOriginEndpointHlsManifestList{{
				ID:                             cf.String(s.endpointID(PackagingCMAF) + "-manifest"),
				AdMarkers:                      optionalString(s.config.AdMarkers),
				IncludeIframeOnlyStream:        cf.Bool(false),
				PlaylistWindowSeconds:          cf.Integer(window(c)),
				ProgramDateTimeIntervalSeconds: optionalInteger(c.ProgramDateTimeIntervalSeconds),
			}},
			SegmentDurationSeconds: cf.Integer(segmentDuration(c)),
			StreamSelection:        streamSelection(c.StreamSelection),
		}
		s.addEndpoint(t, PackagingCMAF, endpoint)
	}
	if c := s.config.MSS; c != nil {
		endpoint := s.endpoint(PackagingMSS)
		endpoint.MssPackage = &cf.MediaPackageOriginEndpointMssPackage{
			SegmentDurationSeconds: cf.Integer(segmentDuration(c)),
			ManifestWindowSeconds:  cf.Integer(window(c)),
			StreamSelection:        streamSelection(c.StreamSelection),
		}
		s.addEndpoint(t, PackagingMSS, endpoint)
	}
	return t, nil
}

func (s *MediaPackageStack) endpointID(packaging string) string {
	return s.name + "-" + strings.ToLower(packaging)
}

func (s *MediaPackageStack) endpoint(packaging string) *cf.MediaPackageOriginEndpoint {
	endpoint := &cf.MediaPackageOriginEndpoint{
		ChannelID: cf.Ref(MediaPackageChannelID).String(),
		ID:        cf.String(s.endpointID(packaging)),
		Tags:      cf.Tags(s.tags),
	}
	if auth := s.config.Authorization; auth != nil {
		endpoint.Authorization = &cf.MediaPackageOriginEndpointAuthorization{
			CdnIdentifierSecret: cf.String(auth.SecretArn),
			SecretsRoleArn:      cf.String(auth.RoleArn),
		}
	}
	return endpoint
}

func (s *MediaPackageStack) addEndpoint(t *cf.Template, packaging string, endpoint *cf.MediaPackageOriginEndpoint) {
	id := EndpointLogicalID(packaging)
	r := t.AddResource(id, endpoint)
	r.DependsOn = []string{MediaPackageChannelID}
	t.AddOutput(EndpointOutput(packaging), fmt.Sprintf("URL of the %s endpoint", strings.ToUpper(packaging)), cf.GetAtt(id, "Url"))
}

func segmentDuration(c *PackagingConfig) int64 {
	return defaultInt(c.SegmentDurationSeconds, DefaultSegmentDurationSeconds)
}

func window(c *PackagingConfig) int64 {
	return defaultInt(c.WindowSeconds, DefaultWindowSeconds)
}

func streamSelection(c *StreamSelectionConfig) *cf.MediaPackageOriginEndpointStreamSelection {
	if c == nil {
		return nil
	}
	return &cf.MediaPackageOriginEndpointStreamSelection{
		MinVideoBitsPerSecond: optionalInteger(c.MinVideoBitsPerSecond),
		MaxVideoBitsPerSecond: optionalInteger(c.MaxVideoBitsPerSecond),
		StreamOrder:           optionalString(c.StreamOrder),
	}
}
