// Package config persists named gateway profiles so operators can address
// several appliances without retyping connection details.
//
// Profiles live in a single profiles.json under the user config directory
// together with the name of the currently selected profile. The file is
// read through a comment-stripping pass, so hand-edited files with // or
// /* */ comments still load. Writes rewrite the whole file; it is small
// and rewriting keeps the store free of partial-update states beyond what
// a mid-write crash could leave (callers needing atomicity should place
// the config dir on the same filesystem as their temp dir and rename).
//
// The profile fields are inert data here — everything that talks to a
// gateway lives in external collaborators.
package config
