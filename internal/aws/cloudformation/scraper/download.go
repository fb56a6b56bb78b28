package scraper

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultSchemaRegion = "us-east-1"

// URLs posted to: http://docs.aws.amazon.com/AWSCloudFormation/latest/UserGuide/cfn-resource-specification.html
var schemaURLs = map[string]string{
	"us-east-1":      "https://d1uauaxba7bl26.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"us-east-2":      "https://dnwj8swjjbsbt.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"us-west-1":      "https://d68hl49wbnanq.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"us-west-2":      "https://d201a2mn26r7lk.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"ap-south-1":     "https://d2senuesg1djtx.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"ap-northeast-2": "https://d1ane3fvebulky.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"ap-southeast-1": "https://doigdx0kgq9el.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"ap-southeast-2": "https://d2stg8d246z9di.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"ap-northeast-1": "https://d33vqc0rt9ld30.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"eu-central-1":   "https://d1mta8qj7i28i2.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"eu-west-1":      "https://d3teyb21fexa9r.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"eu-west-2":      "https://d1742qcu2c1ncx.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
	"sa-east-1":      "https://d3c9jyj3w509b0.cloudfront.net/latest/gzip/CloudFormationResourceSpecification.json",
}

// SchemaURL returns the download location of the resource specification
// for region, falling back to us-east-1 for unknown regions.
func SchemaURL(region string) string {
	if url, ok := schemaURLs[region]; ok {
		return url
	}
	return schemaURLs[defaultSchemaRegion]
}

// Download fetches the raw resource specification from url.
func Download(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download CloudFormation schema from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download CloudFormation schema from %s: %s", url, resp.Status)
	}
	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to download CloudFormation schema from %s: %w", url, err)
	}
	return gunzipIfNeeded(buf)
}

// Parse decodes a resource specification, compressed or not.
func Parse(buf []byte) (CloudFormationSchema, error) {
	var schema CloudFormationSchema
	raw, err := gunzipIfNeeded(buf)
	if err != nil {
		return schema, err
	}
	if err := json.Unmarshal(raw, &schema); err != nil {
		return schema, fmt.Errorf("failed to parse CloudFormation schema: %w", err)
	}
	return schema, nil
}

// The gzip endpoints are not always decoded by the transport.
func gunzipIfNeeded(buf []byte) ([]byte, error) {
	if len(buf) < 2 || buf[0] != 0x1f || buf[1] != 0x8b {
		return buf, nil
	}
	r, err := gzip.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
