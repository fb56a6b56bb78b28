// cfn-codegen generates the typed CloudFormation property bags from the
// CloudFormation resource specification.
package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zalando-incubator/cfn-pipes/internal/aws/cloudformation/scraper"
)

var (
	specFile    string
	region      string
	services    []string
	outputFile  string
	specOutput  string
	httpTimeout time.Duration
)

func main() {
	kingpin.Flag("spec", "Path of a local resource specification. When empty the latest specification is downloaded.").StringVar(&specFile)
	kingpin.Flag("region", "Region whose specification to download.").Default("us-east-1").Envar("AWS_REGION").StringVar(&region)
	kingpin.Flag("service", "Service prefix to generate, e.g. SQS for AWS::SQS::*. Repeat for more services; none means all.").StringsVar(&services)
	kingpin.Flag("output", "File to write the generated Go source to.").Default("schema.go").StringVar(&outputFile)
	kingpin.Flag("save-spec", "Also write the filtered specification to this file.").StringVar(&specOutput)
	kingpin.Flag("timeout", "Timeout for downloading the specification.").Default("1m").DurationVar(&httpTimeout)
	kingpin.Parse()

	buf, err := readSpec()
	if err != nil {
		log.Fatal(err)
	}
	schema, err := scraper.Parse(buf)
	if err != nil {
		log.Fatal(err)
	}
	schema = schema.Filter(services)
	log.Infof("Generating %d resource types and %d property types from specification %s",
		len(schema.ResourceTypes), len(schema.PropertyTypes), schema.ResourceSpecificationVersion)

	var out bytes.Buffer
	if err := scraper.WriteTo(schema, &out); err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(outputFile, out.Bytes(), 0644); err != nil {
		log.Fatal(err)
	}
	log.Infof("Created output file: %s", outputFile)

	if specOutput != "" {
		if err := writeSpec(schema, specOutput); err != nil {
			log.Fatal(err)
		}
		log.Infof("Created specification file: %s", specOutput)
	}
}

func readSpec() ([]byte, error) {
	if specFile != "" {
		return os.ReadFile(specFile)
	}
	ctx, cancel := context.WithTimeout(context.Background(), httpTimeout)
	defer cancel()

	url := scraper.SchemaURL(region)
	log.Infof("Downloading CloudFormation resource specification from %s", url)
	return scraper.Download(ctx, http.DefaultClient, url)
}
