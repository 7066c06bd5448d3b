package verification

// Verdict is the terminal classification of one pipeline run. Only
// VerdictApproved is persisted (as a receipt row); everything else is
// reported to the submitter and dropped.
type Verdict int

const (
	VerdictApproved Verdict = iota
	VerdictDuplicateRejected
	VerdictContentMismatchRejected
	VerdictAcquisitionFailed
	VerdictConversionFailed

	// VerdictStorageFault is a system fault, not a decision: the duplicate
	// store could not give a definitive answer, so the run terminates
	// without approving.
	VerdictStorageFault
)

func (v Verdict) String() string {
	switch v {
	case VerdictApproved:
		return "approved"
	case VerdictDuplicateRejected:
		return "duplicate_rejected"
	case VerdictContentMismatchRejected:
		return "content_mismatch_rejected"
	case VerdictAcquisitionFailed:
		return "acquisition_failed"
	case VerdictConversionFailed:
		return "conversion_failed"
	case VerdictStorageFault:
		return "storage_fault"
	}
	return "unknown"
}

// State names one stage of the pipeline. Within a run, stages execute
// strictly in declaration order; there is no reordering or skipping.
type State int

const (
	StateAcquiring State = iota
	StateRendering
	StateRecognizing
	StateFingerprinting
	StateDuplicateChecking
	StateFieldChecking
	StateMetadataChecking
	StateDone
)

func (s State) String() string {
	switch s {
	case StateAcquiring:
		return "acquiring"
	case StateRendering:
		return "rendering"
	case StateRecognizing:
		return "recognizing"
	case StateFingerprinting:
		return "fingerprinting"
	case StateDuplicateChecking:
		return "duplicate_checking"
	case StateFieldChecking:
		return "field_checking"
	case StateMetadataChecking:
		return "metadata_checking"
	case StateDone:
		return "done"
	}
	return "unknown"
}
