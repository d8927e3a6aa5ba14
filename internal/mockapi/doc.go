// Package mockapi serves a fixture dataset on the same endpoints as the
// Animals service.
//
// It backs the `animalsctl mock-api` command, used to run the terminal UI
// without network access, and the HTTP tests of the api package. Data comes
// from a YAML fixture file (or the built-in one) and is held either in memory
// or in a BoltDB file.
//
//	animals:
//	  - id: a1
//	    name: Lion
//	    image: https://...
//	    description: ...
//	    imageGallery: [https://...]   # optional
//	    facts: ["..."]                # optional
//	environments:
//	  - id: e1
//	    name: Savanna
//	    animalIds: [a1]
package mockapi
