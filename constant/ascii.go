package constant

// AsciiArtLogo is the banner printed above the root command help.
const AsciiArtLogo = `      _        _
  ___| |_ __ _| |_ ___ _ __   __ _ _ __   ___
 / __| __/ _` + "`" + ` | __/ _ \ '_ \ / _` + "`" + ` | '_ \ / _ \
 \__ \ || (_| | ||  __/ |_) | (_| | | | |  __/
 |___/\__\__,_|\__\___| .__/ \__,_|_| |_|\___|
                      |_|`
