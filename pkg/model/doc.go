// Package model defines the form descriptor produced by the authentication
// form pipeline. A FormBag bundles a structural schema (kin-openapi), the
// layout tree of typed UI nodes, initial data keyed by dot-path, and the data
// schema holding per-field validation rules plus the reserved submit options.
//
// Nodes form a closed set of variants behind the Node interface. Every
// variant serialises as `{"type": <discriminator>, ..., "options": {...}}` so
// renderers can dispatch on the type member. Behaviour that used to be
// expressed as callbacks (button clicks, stepper navigation, polling) is
// carried as Intent values interpreted by the renderer.
//
// Transformers take a bag by value and return a new bag. Callers that need
// to keep a previous value should Clone it; the uischema chain does this
// before every step.
package model
