package rules

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quotecms/quotetag/pkg/errors"
)

// LoadFile reads rule records from a file, choosing the format by
// extension: .yaml/.yml are parsed as YAML, everything else as CSV.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceRead, "cannot open rules file %s", path)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseCSV(f)
	}
}

// ParseCSV reads records from CSV input. The first row must be a
// header naming the keyword and tags columns, matching the original
// auto-tag-keywords.csv layout:
//
//	keyword,tags
//	gold,"gold, precious metals"
func ParseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceParse, "malformed CSV rules source")
	}
	if len(rows) == 0 {
		return nil, nil
	}

	keywordCol, tagsCol := -1, -1
	for i, name := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "keyword":
			keywordCol = i
		case "tags":
			tagsCol = i
		}
	}
	if keywordCol < 0 || tagsCol < 0 {
		return nil, errors.New(errors.ErrSourceParse,
			"CSV rules source must have a header with keyword and tags columns")
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := Record{Row: i + 2}
		if keywordCol < len(row) {
			rec.Keyword = row[keywordCol]
		}
		if tagsCol < len(row) {
			rec.Tags = row[tagsCol]
		}
		records = append(records, rec)
	}
	return records, nil
}

// yamlRule is one entry of a YAML rules source. Tags accept either a
// comma-separated string or a list of strings.
type yamlRule struct {
	Keyword string   `yaml:"keyword"`
	Tags    yamlTags `yaml:"tags"`
}

type yamlTags string

func (t *yamlTags) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*t = yamlTags(strings.Join(list, ","))
		return nil
	default:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*t = yamlTags(s)
		return nil
	}
}

// ParseYAML reads records from a YAML list of {keyword, tags} entries
func ParseYAML(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceRead, "cannot read YAML rules source")
	}

	var entries []yamlRule
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceParse, "malformed YAML rules source")
	}

	records := make([]Record, 0, len(entries))
	for i, e := range entries {
		records = append(records, Record{
			Keyword: e.Keyword,
			Tags:    string(e.Tags),
			Row:     i + 1,
		})
	}
	return records, nil
}
