package usecases

import "context"

type CreateProjectExecutor interface {
	Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error)
}

type AddMemberExecutor interface {
	Execute(ctx context.Context, cmd AddMemberCommand) (*AddMemberResult, error)
}

type RemoveMemberExecutor interface {
	Execute(ctx context.Context, cmd RemoveMemberCommand) (*RemoveMemberResult, error)
}

type ListMembersExecutor interface {
	Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error)
}

type LinkGithubRepoExecutor interface {
	Execute(ctx context.Context, cmd LinkGithubRepoCommand) (*LinkGithubRepoResult, error)
}

type GetProjectExecutor interface {
	Execute(ctx context.Context, query GetProjectQuery) (*ProjectDTO, error)
}

type ListProjectsExecutor interface {
	Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error)
}
