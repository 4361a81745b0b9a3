// Package testdata builds level fixtures for tests.
package testdata

import (
	"fmt"
	"strings"
	"testing/fstest"

	"gopkg.in/yaml.v3"
)

type Level struct {
	Name   string `yaml:"name"`
	File   string `yaml:"file"`
	Clear  int    `yaml:"clear"`
	Combat bool   `yaml:"combat,omitempty"`

	CSV string `yaml:"-"`
}

// FS lays levels out the way a levels directory would be.
func FS(levels ...Level) (fstest.MapFS, error) {
	for i := range levels {
		if levels[i].File == "" {
			levels[i].File = fmt.Sprintf("level%d.csv", i+1)
		}
	}
	manifest, err := yaml.Marshal(struct {
		Levels []Level `yaml:"levels"`
	}{levels})
	if nil != err {
		return nil, err
	}

	fsys := fstest.MapFS{"levels.yaml": {Data: manifest}}
	for _, l := range levels {
		fsys[l.File] = &fstest.MapFile{Data: []byte(l.CSV)}
	}
	return fsys, nil
}

// Notes declares one note of variant per frame in lane.
func Notes(lane, variant string, frames ...int) string {
	var b strings.Builder
	for _, f := range frames {
		fmt.Fprintf(&b, "%s,%s,%d\n", lane, variant, f)
	}
	return b.String()
}
