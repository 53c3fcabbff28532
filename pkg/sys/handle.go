/*
 * Copyright 2021-2022 by Nedim Sabic Sabic
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

package sys

// The handle types below are opaque, non-owning references to objects that
// live in the windowing subsystem. They are passed verbatim between calls and
// never dereferenced. None of them carries release responsibility: module,
// icon, cursor and brush handles are stock objects owned by the system, and
// window handles are torn down by the system when WM_DESTROY is processed.

// Hinstance defines the module (instance) handle type.
type Hinstance uintptr

// Hicon defines the icon handle type.
type Hicon uintptr

// Hcursor defines the cursor handle type.
type Hcursor uintptr

// Hbrush defines the brush handle type.
type Hbrush uintptr

// Hmenu defines the menu handle type.
type Hmenu uintptr

// Hwnd defines the window handle type
type Hwnd uintptr

// Hdc defines the device context handle type.
type Hdc uintptr

// Atom is an opaque data type. It can be
// used to represent the window class being
// registered with RegisterClass API function
type Atom uint16

// InvalidHwnd designates an invalid window handle
const InvalidHwnd Hwnd = 0

// IsValid indicates if the window handle is valid.
func (w Hwnd) IsValid() bool { return w != InvalidHwnd }

// IsValid indicates if the device context handle is valid.
func (dc Hdc) IsValid() bool { return dc != 0 }

// MakeIntResource converts the integer resource identifier
// to the value expected by the resource loading functions.
func MakeIntResource(id uint16) uintptr { return uintptr(id) }
