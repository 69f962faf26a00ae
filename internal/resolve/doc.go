// Package resolve answers "which view serves this URL?" for a flattened
// route table.
//
// Route patterns use the framework's path syntax ("vendor/<int:pk>/"). They
// are translated to chi patterns ("/vendor/{pk:[0-9]+}/") and registered on a
// chi.Mux that is only used for matching, never for serving.
package resolve
