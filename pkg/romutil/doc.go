/******************************************************************************\
* tinylox                                                                      *
*                                                                              *
* Copyright 2020-2025 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// The romutil ("tinylox utils") package contains assorted small utilities
// used across the other tinylox packages and the cmd/tinylox CLI.
package romutil
