// Package validator collects validation issues and reports them.
//
// A [Result] aggregates [Issue] values of three severities. Only errors
// make a result fail; warnings and info notes are reported alongside.
//
//	result := &validator.Result{}
//	if volume > 1 {
//		result.AddError("audioVolume", "out of range", volume)
//	}
//	validator.NewReporter(os.Stdout, validator.FormatText).Report(result)
package validator
