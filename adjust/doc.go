// Package adjust corrects remotely sensed precipitation fields by ground
// truth observations.
//
// The typical use is adjusting a radar-based rainfall estimate by rain gage
// readings, but nothing here is radar specific: any spatial point field can
// be adjusted by selected point measurements. Two error models are provided.
// [Add] interpolates the additive error between gages and the raw field back
// onto the field, [MFB] applies a single multiplicative mean-field-bias
// factor to the whole domain.
//
// Both models compare gages against the raw field through [RawAtObs], which
// summarises the k nearest raw samples around each gage by a closed, tagged
// aggregation ([Stat]); unknown aggregation names fail at construction, not
// during adjustment.
package adjust
