package heliclockter

// Package heliclockter provides:
//
// - Datetime variants that are timezone-aware by construction (DateTime[TZ], DateTime[UTC], DateTime[Local])
// - One construction engine with an explicit naive-input policy per variant
// - Instant-preserving zone shifts (In/InZone) and cross-variant retyping (As)
// - Canonical ISO-8601 interchange plus JSON/YAML/msgpack/sql bindings
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place wire codecs under codec/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	now, err := heliclockter.Now[heliclockter.UTC]()
//	dt, err := heliclockter.FromString[heliclockter.TZ]("2022-11-04T15:30:00+01:00")
//	later, err := heliclockter.Future[heliclockter.UTC](heliclockter.Delta{Hours: 2})
//
// A value of any variant is guaranteed to carry a resolved timezone; the only
// thing a variant adds is the zone it assumes when input arrives naive.
