package reader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
	"unicode"

	"github.com/achilleasa/rigel/asset"
	"github.com/achilleasa/rigel/log"
	"github.com/achilleasa/rigel/scene"
)

type jsonSceneReader struct {
	logger log.Logger
}

// Create a new json scene reader.
func newJSONSceneReader() *jsonSceneReader {
	return &jsonSceneReader{
		logger: log.New("json scene reader"),
	}
}

// Read scene definition. The document is either a bare object list or a
// scene document with camera and objects keys.
func (r *jsonSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	data, err := io.ReadAll(sceneRes)
	if err != nil {
		return nil, fmt.Errorf("reader: could not read scene data: %v", err)
	}

	var raw rawScene
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(data, &raw.Objects)
	} else {
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("reader: could not parse scene: %v", err)
	}

	sc, err := buildScene(raw)
	if err != nil {
		return nil, err
	}

	r.logger.Noticef("parsed scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return sc, nil
}
