package record

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

const (
	recordObject   = "record"
	recordProperty = "best"
)

// GdataStore keeps the record in the per-user application data directory.
type GdataStore struct {
	app     string
	manager *gdata.Manager
}

// OpenGdata opens the data directory of app.
func OpenGdata(app string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return nil, fmt.Errorf("record: cannot open data dir for %s: %w", app, err)
	}
	return &GdataStore{app: app, manager: m}, nil
}

func (s *GdataStore) Read() int {
	if !s.manager.ObjectPropExists(recordObject, recordProperty) {
		return 0
	}
	data, err := s.manager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return 0
	}
	return Parse(data)
}

func (s *GdataStore) Write(score int) error {
	if err := s.manager.SaveObjectProp(recordObject, recordProperty, Format(score)); err != nil {
		return fmt.Errorf("record: cannot save: %w", err)
	}
	return nil
}

func (s *GdataStore) Location() string {
	return fmt.Sprintf("%s data dir (%s/%s)", s.app, recordObject, recordProperty)
}
