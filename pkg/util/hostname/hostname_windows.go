/*
 * Copyright 2020-2021 by Nedim Sabic Sabic
 * https://www.fibratus.io
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package hostname

import (
	"golang.org/x/sys/windows"
)

// fqdn queries the physical DNS fully qualified name of the machine.
func fqdn() (string, error) {
	n := uint32(256)
	for {
		buf := make([]uint16, n)
		err := windows.GetComputerNameEx(windows.ComputerNamePhysicalDnsFullyQualified, &buf[0], &n)
		if err == windows.ERROR_MORE_DATA {
			continue
		}
		if err != nil {
			return "", err
		}
		return windows.UTF16ToString(buf[:n]), nil
	}
}
