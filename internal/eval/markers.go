package eval

// Marker lines written to the instance log. The reporting tooling scans for
// these exact strings, so they must not change.
const (
	applyPatchPass = ">>>>> Applied patch"
	applyPatchFail = ">>>>> Patch Apply Failed"
	testsPassed    = ">>>>> All Tests Passed"
	testsFailed    = ">>>>> Some Tests Failed"
	testsTimeout   = ">>>>> Tests Timed Out"
	testsErrored   = ">>>>> Tests Errored"
)

// Labels attached to each patch application in the log.
const (
	patchPred           = "pred"
	patchPredTry        = "pred_try"
	patchPredMinimal    = "pred_minimal"
	patchPredMinimalTry = "pred_minimal_try"
	patchTest           = "test"
)
