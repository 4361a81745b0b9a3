package level

import (
	"embed"
	"io"
	"io/fs"
	"os"

	"git.lost.host/meutraa/shadowdance/internal/game"
	"git.lost.host/meutraa/shadowdance/internal/parser"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const manifestFile = "levels.yaml"

//go:embed data
var builtin embed.FS

// Entry describes one selectable level.
type Entry struct {
	Name       string `yaml:"name"`
	File       string `yaml:"file"`
	ClearScore int    `yaml:"clear"`
	Combat     bool   `yaml:"combat"`
}

// Manifest is the ordered list of levels and where their files live.
type Manifest struct {
	Levels []Entry `yaml:"levels"`

	fsys fs.FS
}

// Builtin returns the levels shipped with the game.
func Builtin() (*Manifest, error) {
	sub, err := fs.Sub(builtin, "data")
	if nil != err {
		return nil, errors.Wrap(err, "unable to open built in levels")
	}
	return Open(sub)
}

// Dir reads a manifest and its levels from a directory.
func Dir(path string) (*Manifest, error) {
	return Open(os.DirFS(path))
}

func Open(fsys fs.FS) (*Manifest, error) {
	f, err := fsys.Open(manifestFile)
	if nil != err {
		return nil, errors.Wrap(err, "unable to open level manifest")
	}
	defer f.Close()

	m, err := Decode(f)
	if nil != err {
		return nil, err
	}
	m.fsys = fsys
	return m, nil
}

func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); nil != err {
		return nil, errors.Wrap(err, "unable to decode level manifest")
	}
	if len(m.Levels) == 0 {
		return nil, errors.New("level manifest lists no levels")
	}
	for i, e := range m.Levels {
		if e.Name == "" || e.File == "" {
			return nil, errors.Errorf("level %d needs a name and a file", i+1)
		}
	}
	return &m, nil
}

// Load parses and builds the lanes of level i.
func (m *Manifest) Load(i int, p parser.Parser, policy game.Policy) ([]*game.Lane, error) {
	if i < 0 || i >= len(m.Levels) {
		return nil, errors.Errorf("no level %d", i+1)
	}
	e := m.Levels[i]
	f, err := m.fsys.Open(e.File)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to open level %s", e.Name)
	}
	defer f.Close()

	decls, err := p.Parse(f)
	if nil != err {
		return nil, errors.Wrapf(err, "%s", e.File)
	}
	lanes, err := Build(decls, policy)
	if nil != err {
		return nil, errors.Wrapf(err, "%s", e.File)
	}
	return lanes, nil
}
