package cssom

import (
	"fmt"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/uistyle/selector"
)

// Configuration keys read by OptionsFromConfig.
const (
	ConfigIndexed = "uistyle.indexed"
	ConfigTrim    = "uistyle.trim"
	ConfigInline  = "uistyle.inline"
)

// Options control the behaviour of a stylesheet.
type Options struct {
	Indexed bool              // look up rule sets with a selector trie
	Inline  bool              // stylesheet holds inline styles
	Trim    selector.StripSet // facets stripped by TrimStyling
	Cache   *selector.Cache   // selector memoization, nil for selector.Default
}

// DefaultOptions returns indexed lookup, non-inline, selector.DefaultTrim.
func DefaultOptions() Options {
	return Options{
		Indexed: true,
		Trim:    selector.DefaultTrim,
		Cache:   selector.Default,
	}
}

// OptionsFromConfig reads options from a configuration. Unset keys keep
// their defaults.
func OptionsFromConfig(conf schuko.Configuration) (Options, error) {
	opts := DefaultOptions()
	if conf == nil {
		return opts, nil
	}
	if conf.IsSet(ConfigIndexed) {
		opts.Indexed = conf.GetBool(ConfigIndexed)
	}
	if conf.IsSet(ConfigTrim) {
		set, err := selector.ParseStripSet(conf.GetString(ConfigTrim))
		if err != nil {
			return opts, fmt.Errorf("configuration %s: %w", ConfigTrim, err)
		}
		opts.Trim = set
	}
	if conf.IsSet(ConfigInline) {
		opts.Inline = conf.GetBool(ConfigInline)
	}
	return opts, nil
}

func (o Options) cache() *selector.Cache {
	if o.Cache == nil {
		return selector.Default
	}
	return o.Cache
}
