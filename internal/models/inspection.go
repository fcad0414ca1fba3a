package models

// JobOrderField is the payload key every inspection must carry
const JobOrderField = "jobOrder"

// ServerTimestampField is added by the server when an inspection is stored
const ServerTimestampField = "serverTimestamp"

// Inspection is an unvalidated passthrough payload. Whatever JSON object the
// client sends is stored as-is, plus the server timestamp.
type Inspection map[string]interface{}

// JobOrder returns the job order reference and whether it is usable.
// null, "", false and 0 all count as missing.
func (i Inspection) JobOrder() (interface{}, bool) {
	v, ok := i[JobOrderField]
	if !ok || v == nil {
		return nil, false
	}
	switch t := v.(type) {
	case string:
		return v, t != ""
	case bool:
		return v, t
	case float64:
		return v, t != 0
	}
	return v, true
}

// Clone returns a shallow copy so the caller's map is never mutated
func (i Inspection) Clone() Inspection {
	out := make(Inspection, len(i)+1)
	for k, v := range i {
		out[k] = v
	}
	return out
}
