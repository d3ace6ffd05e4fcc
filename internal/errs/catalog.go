package errs

// Usage
var (
	ErrNoCommand        = New(Usage, "Please enter a command.")
	ErrUnknownCommand   = New(Usage, "No command with that name exists.")
	ErrIncorrectOperand = New(Usage, "Incorrect operands.")
	ErrNoMessage        = New(Usage, "Please enter a commit message.")
)

// Repository lifecycle
var (
	ErrNotInitialized = New(NotInitialized, "Not in an initialized tvc directory.")
	ErrAlreadyInit    = New(AlreadyExists, "A tvc version-control system already exists in the current directory.")
)

// Files, commits and branches
var (
	ErrFileNotExist      = New(NotFound, "File does not exist.")
	ErrFileNotInCommit   = New(NotFound, "File does not exist in that commit.")
	ErrNoSuchCommit      = New(NotFound, "No commit with that id exists.")
	ErrNoSuchObject      = New(NotFound, "No object with that id exists.")
	ErrNoCommitWithMsg   = New(NotFound, "Found no commit with that message.")
	ErrNoSuchBranch      = New(NotFound, "No such branch exists.")
	ErrBranchNotExist    = New(NotFound, "A branch with that name does not exist.")
	ErrBranchExists      = New(AlreadyExists, "A branch with that name already exists.")
	ErrNothingToRemove   = New(IllegalState, "No reason to remove the file.")
	ErrEmptyCommit       = New(IllegalState, "No changes added to the commit.")
	ErrRemoveCurrent     = New(IllegalState, "Cannot remove the current branch.")
	ErrCheckoutCurrent   = New(IllegalState, "No need to checkout the current branch.")
	ErrUntrackedInTheWay = New(IllegalState, "There is an untracked file in the way; delete it, or add and commit it first.")
	ErrUncommitted       = New(IllegalState, "You have uncommitted changes.")
	ErrSelfMerge         = New(IllegalState, "Cannot merge a branch with itself.")
	ErrGivenIsAncestor   = New(IllegalState, "Given branch is an ancestor of the current branch.")
	ErrInvalidBranchName = New(Usage, "Invalid branch name.")
)

// Remotes
var (
	ErrRemoteExists      = New(AlreadyExists, "A remote with that name already exists.")
	ErrRemoteNotExist    = New(NotFound, "A remote with that name does not exist.")
	ErrRemoteDirNotFound = New(NotFound, "Remote directory not found.")
	ErrRemoteNoBranch    = New(NotFound, "That remote does not have that branch.")
	ErrPullBeforePush    = New(IllegalState, "Please pull down remote changes before pushing.")
)
