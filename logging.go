/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemfetch

import (
	"github.com/streamingfast/logging"
	"go.uber.org/zap"
)

var zlog = zap.NewNop()

func init() {
	logging.Register("github.com/suparena/itemfetch", &zlog)
}
