package main

import (
	"encoding/json"
	"os"

	"github.com/zalando-incubator/cfn-pipes/internal/aws/cloudformation/scraper"
)

// writeSpec stores the filtered specification so that it can be checked
// in next to the generated source.
func writeSpec(schema scraper.CloudFormationSchema, path string) error {
	buf, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buf, '\n'), 0644)
}
