//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package buffer holds the text of an iosplit session.
// A buffer is a sequence of rows shared by two cursors: an input cursor
// that tracks locally typed text and an output cursor that tracks text
// received from the shell. Insertions and deletions made through either
// cursor adjust the other one so that both keep their logical positions.
// Rows are stored in an arena and referenced by generational handles,
// so a handle to a removed row is detected instead of followed.
package buffer
