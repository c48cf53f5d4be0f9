package plugin

import "github.com/diabloproject/markc/lang"

// Standard returns the stock plugin registry in dispatch order. The first
// plugin exposing a requested function name wins.
func Standard() lang.Registry {
	return lang.Registry{
		Include{},
		Eval{},
		YAML{},
		HTML{},
	}
}
