package scraper

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniSpec = `{
  "ResourceSpecificationVersion": "1.2.3",
  "PropertyTypes": {},
  "ResourceTypes": {
    "AWS::SQS::Queue": {
      "Attributes": {"Arn": {"PrimitiveType": "String"}},
      "Properties": {
        "QueueName": {"PrimitiveType": "String", "Required": false},
        "Tags": {"Type": "List", "ItemType": "Tag"}
      }
    }
  }
}`

func gzipped(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestSchemaURL(t *testing.T) {
	assert.Equal(t, schemaURLs["eu-central-1"], SchemaURL("eu-central-1"))
	assert.Equal(t, schemaURLs["us-east-1"], SchemaURL("mars-north-1"))
}

func TestDownloadAndParse(t *testing.T) {
	for _, tc := range []struct {
		name string
		body []byte
	}{
		{"plain", []byte(miniSpec)},
		{"gzip", gzipped(t, miniSpec)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write(tc.body)
			}))
			defer server.Close()

			buf, err := Download(context.Background(), server.Client(), server.URL)
			require.NoError(t, err)

			schema, err := Parse(buf)
			require.NoError(t, err)
			assert.Equal(t, "1.2.3", schema.ResourceSpecificationVersion)
			queue := schema.ResourceTypes["AWS::SQS::Queue"]
			assert.Equal(t, "Tag", queue.Properties["Tags"].ItemType)
			assert.Equal(t, "List", queue.Properties["Tags"].Type.Scalar)
		})
	}
}

func TestDownloadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := Download(context.Background(), server.Client(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse CloudFormation schema")
}

func TestPropertyItemType(t *testing.T) {
	var def PropertyTypeDefinition
	require.Error(t, def.Type.UnmarshalJSON([]byte(`42`)))

	require.NoError(t, def.Type.UnmarshalJSON([]byte(`["String","Integer"]`)))
	assert.Equal(t, []string{"String", "Integer"}, def.Type.MultiValues)

	buf, err := def.Type.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["String","Integer"]`, string(buf))
}
