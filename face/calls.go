package face

import "context"

// One method per expression, each equivalent to Play with its name.
// The close expression is CloseEyes.

func (r *Renderer) CloseEyes(ctx context.Context) error   { return r.Play(ctx, Close) }
func (r *Renderer) Normal(ctx context.Context) error      { return r.Play(ctx, Normal) }
func (r *Renderer) Blink(ctx context.Context) error       { return r.Play(ctx, Blink) }
func (r *Renderer) Sad(ctx context.Context) error         { return r.Play(ctx, Sad) }
func (r *Renderer) Upset(ctx context.Context) error       { return r.Play(ctx, Upset) }
func (r *Renderer) Happy(ctx context.Context) error       { return r.Play(ctx, Happy) }
func (r *Renderer) Cute(ctx context.Context) error        { return r.Play(ctx, Cute) }
func (r *Renderer) Angry(ctx context.Context) error       { return r.Play(ctx, Angry) }
func (r *Renderer) Sleepy(ctx context.Context) error      { return r.Play(ctx, Sleepy) }
func (r *Renderer) Wink(ctx context.Context) error        { return r.Play(ctx, Wink) }
func (r *Renderer) Surprised(ctx context.Context) error   { return r.Play(ctx, Surprised) }
func (r *Renderer) Confused(ctx context.Context) error    { return r.Play(ctx, Confused) }
func (r *Renderer) Love(ctx context.Context) error        { return r.Play(ctx, Love) }
func (r *Renderer) Dizzy(ctx context.Context) error       { return r.Play(ctx, Dizzy) }
func (r *Renderer) Thinking(ctx context.Context) error    { return r.Play(ctx, Thinking) }
func (r *Renderer) Mischievous(ctx context.Context) error { return r.Play(ctx, Mischievous) }
func (r *Renderer) Crying(ctx context.Context) error      { return r.Play(ctx, Crying) }
func (r *Renderer) Nervous(ctx context.Context) error     { return r.Play(ctx, Nervous) }
