package domain

// AppResult is the result of applying a setting to one app.
type AppResult struct {
	App App
	Err error
}

// RunOutcome aggregates one invocation. Failed is true if any token was
// rejected or any adapter failed.
type RunOutcome struct {
	Results  []AppResult
	Rejected []string
	Failed   bool
}

// FailedApps lists the apps whose adapter returned an error.
func (o RunOutcome) FailedApps() []App {
	var failed []App
	for _, r := range o.Results {
		if r.Err != nil {
			failed = append(failed, r.App)
		}
	}
	return failed
}
