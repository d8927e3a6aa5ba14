// Package screen holds the data-loading controllers behind the four screens
// of animalsctl: the animal list, the animal detail, the environment list and
// the environment detail.
//
// Every controller follows the same lifecycle:
//
//	Activate ──► Loading ──► Loaded (possibly Empty)
//	                    └──► Failed
//	Activate with a blank id ──► InvalidReference
//
// Activate resets the state and returns one Fetch to run off the UI
// goroutine. The Result it produces is handed back through Apply, which
// ignores results that belong to an earlier activation or arrive after
// Leave. Nothing is memoised: every activation issues a fresh request.
//
// Controllers never navigate. List screens, and the environment detail with
// its animals, report a chosen id through a SelectFunc and leave the decision
// of what to show next to the caller.
package screen
