// Package config resolves presentation settings.
//
// A deck carries settings at two levels. The global level is the optional
// key/value block at the top of the document; it is merged over Defaults so
// every field is populated. The slide level comes from the inline block after
// a slide separator and is kept as given: only the fields the slide declares
// are set. Cascade combines both when a slide is drawn, letting each slide
// field win over its global counterpart.
//
// Six keys are recognized: align, margin, footer, pager, symbols and theme.
// Any other key is rejected with an UnknownKeyError, and malformed values with
// an InvalidValueError. Both match ErrInvalid.
package config
