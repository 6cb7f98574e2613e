package reader

import (
	"strings"

	"github.com/achilleasa/rigel/asset"
	"github.com/achilleasa/rigel/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read a scene from a local file, a http(s) url or stdin when pathToScene
// is "-". The decoder is selected from the file extension; everything
// without a .json extension decodes as YAML, which also accepts JSON
// bodies fed through stdin.
func ReadScene(pathToScene string) (*scene.Scene, error) {
	res, err := asset.NewResource(pathToScene)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return ReadSceneFromResource(res)
}

// Read a scene definition from an opened resource.
func ReadSceneFromResource(res *asset.Resource) (*scene.Scene, error) {
	var r Reader
	if strings.HasSuffix(res.Path(), ".json") {
		r = newJSONSceneReader()
	} else {
		r = newYAMLSceneReader()
	}
	return r.Read(res)
}
