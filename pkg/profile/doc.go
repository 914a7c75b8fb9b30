// Package profile measures and audits widget trees before they ship:
// serialization cost and structural weight (Profile), a verification battery
// over structure, accessibility, actions, and size (TestWidget), an
// interaction inventory (Interactions), and a combined report (RunReport).
package profile
