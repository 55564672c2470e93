// Package courier contains the Courier aggregate: the delivery workers that
// restaurants' orders are assigned to.
//
// A courier's acting identity (role, telegram chat, token) lives in the
// account aggregate; the courier aggregate carries the operational profile
// used when choosing whom to assign: name, phone, and shift availability.
package courier
