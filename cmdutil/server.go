// Package cmdutil holds the pieces commands use to run long-lived processes
// with oklog/run.
package cmdutil

// A Server runs until it fails or is stopped. Run and Stop match the actor
// signature of oklog/run.Group.Add.
type Server interface {
	Run() error
	Stop(error)
}

// ServerFuncs implements Server with plain functions.
type ServerFuncs struct {
	RunFunc  func() error
	StopFunc func(error)
}

// Run calls RunFunc.
func (sf ServerFuncs) Run() error {
	return sf.RunFunc()
}

// Stop calls StopFunc, if set.
func (sf ServerFuncs) Stop(err error) {
	if sf.StopFunc != nil {
		sf.StopFunc(err)
	}
}
