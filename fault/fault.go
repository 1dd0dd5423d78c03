// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrEmptyTree            = NotFoundError("tree is empty")
	ErrInvalidConfigDir     = InvalidError("config is not a folder")
	ErrInvalidConfigTable   = InvalidError("config did not return a table")
	ErrInvalidDeleteCount   = InvalidError("delete count exceeds key count")
	ErrInvalidKeyCount      = InvalidError("key count must be positive")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidMaxImbalance  = InvalidError("maximum imbalance must be at least 1")
	ErrInvalidPattern       = InvalidError("key pattern is not recognised")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidWorkloadName  = InvalidError("workload name is required")
	ErrNoWorkloads          = NotFoundError("no workloads are configured")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrTreeCountMismatch    = ProcessError("tree count does not match inserted keys")
	ErrTreeHeightsCorrupt   = ProcessError("tree cached heights are inconsistent")
	ErrTreeNotBalanced      = ProcessError("tree exceeds its maximum imbalance")
	ErrTreeNotOrdered       = ProcessError("tree is not a binary search tree")
	ErrTreeSearchMismatch   = ProcessError("tree search result is wrong")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
