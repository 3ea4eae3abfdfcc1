// Package automation models the automations an agent can run and the
// adapter that executes them through an external engine.
//
// An Automation is a nameable unit of work with one or more entry points.
// The engine owns scheduling and execution; this package only resolves an
// automation for an agent, fabricates the seed input a live trigger would
// have produced, submits the run, and awaits the result under a hard
// timeout.
package automation
