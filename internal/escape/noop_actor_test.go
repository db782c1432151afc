package escape

// noopActor implements Actor with every method a no-op, so tests can
// embed it and override only the handful of methods they care about.
type noopActor struct{}

func (noopActor) Input(r rune)                                     {}
func (noopActor) LineFeed()                                        {}
func (noopActor) CarriageReturn()                                  {}
func (noopActor) Backspace()                                       {}
func (noopActor) Tab(n int)                                        {}
func (noopActor) MoveBackwardTabs(n int)                           {}
func (noopActor) HorizontalTabSet()                                {}
func (noopActor) ClearTabs(mode TabClearMode)                      {}
func (noopActor) Goto(row, col int)                                {}
func (noopActor) GotoLine(row int)                                 {}
func (noopActor) GotoCol(col int)                                  {}
func (noopActor) MoveUp(n int)                                     {}
func (noopActor) MoveDown(n int)                                   {}
func (noopActor) MoveForward(n int)                                {}
func (noopActor) MoveBackward(n int)                                {}
func (noopActor) MoveUpCr(n int)                                   {}
func (noopActor) MoveDownCr(n int)                                  {}
func (noopActor) SaveCursorPosition()                              {}
func (noopActor) RestoreCursorPosition()                           {}
func (noopActor) ReverseIndex()                                    {}
func (noopActor) InsertBlank(n int)                                {}
func (noopActor) InsertBlankLines(n int)                           {}
func (noopActor) DeleteChars(n int)                                {}
func (noopActor) DeleteLines(n int)                                {}
func (noopActor) EraseChars(n int)                                 {}
func (noopActor) ClearLine(mode LineClearMode)                     {}
func (noopActor) ClearScreen(mode ClearMode)                       {}
func (noopActor) ScrollUp(n int)                                   {}
func (noopActor) ScrollDown(n int)                                 {}
func (noopActor) Decaln()                                          {}
func (noopActor) Substitute()                                      {}
func (noopActor) SetMode(m Mode)                                   {}
func (noopActor) UnsetMode(m Mode)                                 {}
func (noopActor) ReportMode(m Mode)                                {}
func (noopActor) SetScrollingRegion(top, bottom int)               {}
func (noopActor) SetKeyboardMode(mode KeyboardModes, behavior KeyboardModesApplyBehavior) {}
func (noopActor) PopKeyboardMode(n int)                            {}
func (noopActor) PushKeyboardMode(mode KeyboardModes)              {}
func (noopActor) ReportKeyboardMode()                              {}
func (noopActor) SetModifyOtherKeys(v int)                         {}
func (noopActor) ReportModifyOtherKeys()                           {}
func (noopActor) SetCursorStyle(style CursorShape)         {}
func (noopActor) ConfigureCharset(index CharsetIndex, charset Charset) {}
func (noopActor) SetActiveCharset(index CharsetIndex)      {}
func (noopActor) SetKeypadApplicationMode()                        {}
func (noopActor) UnsetKeypadApplicationMode()                      {}
func (noopActor) SetAttribute(attr Attribute)                      {}
func (noopActor) ResetState()                                      {}
func (noopActor) IdentifyTerminal(intermediate byte)               {}
func (noopActor) DeviceStatus(n int)                               {}
func (noopActor) TextAreaSizeChars()                               {}
func (noopActor) TextAreaSizePixels()                              {}
func (noopActor) CellSizePixels()                                  {}
func (noopActor) SetTitle(title string)                            {}
func (noopActor) PushTitle()                                       {}
func (noopActor) PopTitle()                                        {}
func (noopActor) SetWorkingDirectory(uri string)                   {}
func (noopActor) SetHyperlink(link *Hyperlink)             {}
func (noopActor) SetDynamicColor(kind DynamicColorKind, index int, spec string) {}
func (noopActor) ResetDynamicColor(kind DynamicColorKind, index int) {}
func (noopActor) SetColor(index int, c Color)              {}
func (noopActor) ResetColor(index int)                             {}
func (noopActor) QueryColor(index int)                             {}
func (noopActor) SetCursorIcon(name string)                        {}
func (noopActor) ClipboardLoad(selection byte, terminator string)  {}
func (noopActor) ClipboardStore(selection byte, data []byte)       {}
func (noopActor) ApcDispatch(data []byte)                          {}
func (noopActor) PmDispatch(data []byte)                           {}
func (noopActor) SosDispatch(data []byte)                          {}
func (noopActor) Bell()                                            {}
func (noopActor) BlockEvent(ev BlockEvent)                         {}
func (noopActor) ReportError(err error)                            {}

var _ Actor = noopActor{}
