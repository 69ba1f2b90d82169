/*
Package fp provides persistent (immutable, structurally shared) containers
for Go.

# Persistent containers

Every container in this module is a value: “modifying” operations return a
new container and leave the receiver untouched. Under the hood the new
incarnation shares most of its memory with the original; only the path from
the root to the modified slot is copied. This gives stable performance for
container-heavy workloads and makes every version safe to share between
goroutines without coordination, because no version is ever mutated after
construction.

The module is organized as a small family of containers:

  - vector: a persistent indexable sequence with O(1) amortized append,
    replace and pop-last, the substrate for the ordered map.
  - dict: a persistent hash map (hash array mapped trie) with effectively
    constant-time point operations.
  - ordmap: an insertion-order-preserving persistent map, combining hash-map
    lookup performance with deterministic first-insertion iteration order.
  - btree: a persistent sorted map and set over a balanced B+ tree.

Clients use the container packages directly; this root package carries
module-level documentation only.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package fp
