// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

// Status is the outcome of a single storage-adapter call. It is an open
// set: adapters may introduce additional values beyond the ones named here,
// and callers should treat anything other than StatusOK as a failure for
// retry/backoff purposes.
type Status string

const (
	StatusOK              Status = "OK"
	StatusNotFound        Status = "NOT_FOUND"
	StatusNotImplemented  Status = "NOT_IMPLEMENTED"
	StatusError           Status = "ERROR"
	StatusUnexpectedState Status = "UNEXPECTED_STATE"
)

// IsOK reports whether s represents success.
func (s Status) IsOK() bool { return s == StatusOK }
