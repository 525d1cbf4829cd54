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

package configurator

import (
	"errors"

	"github.com/larsw/accumulo/pkg/client"
	"github.com/larsw/accumulo/pkg/common"
	"github.com/larsw/accumulo/pkg/conf"
)

// SetDefaultTableName sets the table to use when a mutation names none.
// An empty name is treated as absent and leaves the configuration
// unchanged; it does not unset an earlier value.
func SetDefaultTableName(implementing interface{}, c *conf.Conf, tableName string) {
	if tableName != "" {
		c.Set(ConfKey(implementing, DefaultTableName), tableName)
	}
}

// GetDefaultTableName returns the default table name. The second return
// value is false when no default table was ever configured, which is a
// normal state the caller must handle.
func GetDefaultTableName(implementing interface{}, c *conf.Conf) (string, bool) {
	return c.Get(ConfKey(implementing, DefaultTableName))
}

// GetBatchWriterOptions materializes the batch writer settings from the
// client info stored in the configuration. A missing client info yields the
// defaults; a malformed property value is a parse error.
func GetBatchWriterOptions(implementing interface{}, c *conf.Conf) (*client.BatchWriterConfig, error) {
	info, err := GetClientInfo(implementing, c)
	if err != nil {
		var nf common.NotFoundError
		if errors.As(err, &nf) {
			return client.NewBatchWriterConfig(), nil
		}
		return nil, err
	}
	return client.BatchWriterConfigFromProperties(info.Props)
}

// SetCreateTables sets whether output tables may be created as needed.
// Disabled by default.
func SetCreateTables(implementing interface{}, c *conf.Conf, enable bool) {
	c.SetBool(ConfKey(implementing, CanCreateTables), enable)
}

// GetCreateTables reports whether output tables may be created as needed.
func GetCreateTables(implementing interface{}, c *conf.Conf) bool {
	return c.GetBool(ConfKey(implementing, CanCreateTables), false)
}

// SetSimulationMode sets whether the job runs in simulation mode, in which
// no output is produced. Disabled by default.
func SetSimulationMode(implementing interface{}, c *conf.Conf, enable bool) {
	c.SetBool(ConfKey(implementing, SimulationMode), enable)
}

// GetSimulationMode reports whether the job runs in simulation mode.
func GetSimulationMode(implementing interface{}, c *conf.Conf) bool {
	return c.GetBool(ConfKey(implementing, SimulationMode), false)
}
