// Package reducers holds the workbench's seven state slices and composes
// them into the root reducer.
//
// Every slice state is held behind a pointer and treated as immutable: a
// reducer either returns its input unchanged or a fresh copy. A slice only
// handles its own domain's actions and never reads another slice's state;
// consequences across slices are follow-up actions issued by NewStore's
// subscriber once the owning slice has accepted a change.
package reducers
