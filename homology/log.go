// SPDX-License-Identifier: MIT

package homology

import logging "github.com/ipfs/go-log/v2"

var log = logging.Logger("homology")
