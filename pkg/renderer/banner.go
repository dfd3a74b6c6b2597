package renderer

// bannerArt is the title shown on the start screen
var bannerArt = []string{
	` ____  _   _    _    _  _______ `,
	`/ ___|| \ | |  / \  | |/ / ____|`,
	`\___ \|  \| | / _ \ | ' /|  _|  `,
	` ___) | |\  |/ ___ \| . \| |___ `,
	`|____/|_| \_/_/   \_\_|\_\_____|`,
}
