/**
 * Copyright 2021 The Accumulo-Go Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package conf

import (
	"sort"
	"strconv"
)

// Conf is a flat string-keyed configuration store. It carries job-scoped
// settings from the submitting process to worker processes: the submitter
// fills it, the job descriptor ships it verbatim, workers read from it.
//
// Conf is owned by the caller. It is not safe for concurrent mutation;
// the expected lifecycle is sequential writes during job setup followed
// by read-only access on the worker side.
type Conf struct {
	entries map[string]string
}

// New creates an empty configuration store.
func New() *Conf {
	return &Conf{
		entries: make(map[string]string),
	}
}

// Get returns the value stored under key. The second return value reports
// whether the key was ever set; absence is a normal state, not an error.
func (c *Conf) Get(key string) (string, bool) {
	value, ok := c.entries[key]
	return value, ok
}

// Set stores value under key, overwriting any earlier value. There is no
// corresponding unset; once set, a key persists for the lifetime of the store.
func (c *Conf) Set(key, value string) {
	c.entries[key] = value
}

// GetBool returns the boolean stored under key, or def if the key was never
// set or the stored value does not parse as a boolean.
func (c *Conf) GetBool(key string, def bool) bool {
	value, ok := c.entries[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return b
}

// SetBool stores a boolean under key.
func (c *Conf) SetBool(key string, value bool) {
	c.entries[key] = strconv.FormatBool(value)
}

// Len returns the number of keys set.
func (c *Conf) Len() int {
	return len(c.entries)
}

// Keys returns all set keys in sorted order.
func (c *Conf) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the store, typically to hand a
// snapshot to a worker execution context.
func (c *Conf) Clone() *Conf {
	nc := New()
	for k, v := range c.entries {
		nc.entries[k] = v
	}
	return nc
}

// MarshalYAML serializes the store as a flat string map so that a job
// descriptor can embed it.
func (c *Conf) MarshalYAML() (interface{}, error) {
	return c.entries, nil
}

// UnmarshalYAML reconstitutes the store from its flat map form.
func (c *Conf) UnmarshalYAML(unmarshal func(interface{}) error) error {
	entries := make(map[string]string)
	if err := unmarshal(&entries); err != nil {
		return err
	}
	c.entries = entries
	return nil
}
