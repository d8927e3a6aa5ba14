// Package mcpserver serves the five Animals operations as Model Context
// Protocol tools, over stdio or Server-Sent Events.
//
// Every tool runs the same screen controller the terminal UI uses, so a tool
// call behaves exactly like opening the matching screen: one fetch sequence,
// a blank id is rejected without a request, and failures are returned as tool
// errors carrying the screen's message and error kind.
package mcpserver
