// Package loader registers features on the Fiber application.
//
// Each feature implements Feature. The Manager loads the enabled ones in
// registration order and logs which were skipped.
//
//	m := loader.NewManager(log)
//	m.Register(countries.NewFeature(svc, log))
//	if err := m.LoadAll(app); err != nil {
//	    return err
//	}
package loader
