// Package factory provides a small generic registry used to instantiate
// modules from configuration. Modules are defined by a type string and a map
// of raw settings. Factories decode the settings into typed structs and
// return the concrete implementation.
//
// Example usage:
//
//	reg := factory.NewRegistry[metrics.Sink]()
//	reg.Register("summary", func(conf map[string]any) (metrics.Sink, error) {
//	    var c struct{ Quantile float64 `json:"quantile"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return metrics.NewSummarySink(c.Quantile), nil
//	})
//	s, err := reg.Create(factory.ModuleConfig{Type: "summary", Conf: map[string]any{"quantile": 0.99}})
package factory
