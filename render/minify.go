package render

import (
	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

func minifyJS(source string) (string, error) {
	result := api.Transform(source, api.TransformOptions{
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		Engines: []api.Engine{
			{Name: api.EngineChrome, Version: "100"},
			{Name: api.EngineFirefox, Version: "100"},
			{Name: api.EngineSafari, Version: "15"},
			{Name: api.EngineEdge, Version: "100"},
		},
	})

	if len(result.Errors) > 0 {
		return "", errors.Errorf("minifying javascript: %s", result.Errors[0].Text)
	}

	return string(result.Code), nil
}
