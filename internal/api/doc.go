// Package api is the client side of the Animals REST service.
//
// It contains the data model shared by every screen (Animal, Environment),
// the AnimalsAPI interface the screen controllers depend on, and Client, the
// HTTP implementation of that interface.
//
// # Endpoints
//
//	GET {base}/animals                          list animals
//	GET {base}/animals?environmentId={id}       animals of one environment
//	GET {base}/animals/{id}                     one animal
//	GET {base}/environments                     list environments
//	GET {base}/environments/{id}                one environment
//
// # Errors
//
// Every Client method fails with either a *TransportError (the request could
// not be completed or the server answered with a non-2xx status) or a
// *DecodeError (the body did not have the expected shape). KindOf classifies
// any error returned by this package, including ErrInvalidReference, which the
// screen layer uses for blank identifiers that never reach the network.
//
// Client keeps no mutable state. One instance is meant to be constructed at
// startup and passed explicitly to every consumer.
package api
