package domain

// MissingPolicy decides what happens when a component exists in neither
// cache tier.
type MissingPolicy struct {
	// Action constructs the component. It runs only on a double miss, while
	// the resolver holds the local lock, and is expected to populate the
	// local provider (via DefineComponent) as a side effect rather than
	// returning files. It must not call back into the resolver. A nil
	// Action means resolution fails instead of constructing.
	Action func() error

	// Publish pushes the constructed files to the global store after a
	// successful construction.
	Publish bool
}

// Fail is the policy that never constructs anything: a double miss is a
// component-not-found error.
var Fail = MissingPolicy{}

// Define returns a policy that runs action on a double miss. When publish
// is true the resulting local files are also pushed to the global store.
func Define(publish bool, action func() error) MissingPolicy {
	return MissingPolicy{Action: action, Publish: publish}
}
